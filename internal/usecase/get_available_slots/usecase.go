package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для получения доступных слотов под запрошенную услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Расчет чистый и работает над снимком записей и услуг на запрошенную дату:
// занятость разворачивается из записей, добавляется обеденный перерыв,
// в режиме редактирования исключается собственная цепочка записи,
// затем для каждого слота сетки проверяется, помещается ли услуга целиком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service=%q, exclude=%v",
		req.Date.Format(domain.DateFormat), req.ServiceName, req.ExcludeAppointmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	emptyResponse := &Response{
		Date:        req.Date,
		ServiceName: req.ServiceName,
		Slots:       []types.TimeString{},
	}

	// 2. Услуга не выбрана - пустой список кандидатов, это не ошибка
	if req.ServiceName == "" {
		uc.logger.Info("GetAvailableSlots: no service selected, returning empty slot list")
		return emptyResponse, nil
	}

	// 3. Загружаем каталог услуг
	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	// 4. Ищем запрошенную услугу; неизвестная услуга дает пустой результат
	requested := domain.FindServiceByName(services, req.ServiceName)
	if requested == nil {
		uc.logger.Warn("GetAvailableSlots: unknown service %q, returning empty slot list", req.ServiceName)
		return emptyResponse, nil
	}

	// 5. Загружаем записи на дату
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Разворачиваем занятость
	durations := domain.DurationIndex(services)
	occupancy := domain.ExpandOccupancy(appointments, durations)

	// 7. Режим редактирования: исключаем собственную цепочку записи,
	// рассчитанную по ее ИСХОДНОЙ услуге, чтобы запись не блокировала сама себя
	var selfExclusion []types.TimeString
	if req.ExcludeAppointmentID != nil {
		selfExclusion, err = uc.selfExclusionRun(ctx, *req.ExcludeAppointmentID, req, durations)
		if err != nil {
			return nil, err
		}
	}

	// 8. Рассчитываем доступные стартовые слоты
	blocked := domain.BlockedSlots(occupancy, selfExclusion)
	slots := domain.ResolveAvailableSlots(requested.DurationMinutes, blocked)

	uc.logger.Info("GetAvailableSlots: %d candidate slots for service=%q, date=%s",
		len(slots), requested.Name, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceName:     requested.Name,
		DurationMinutes: requested.DurationMinutes,
		Slots:           slots,
	}, nil
}

// selfExclusionRun возвращает цепочку слотов, занятую редактируемой записью.
// Если запись относится к другой дате или ее услуга удалена, занятости на
// этой дате она не создает и исключать нечего
func (uc *UseCase) selfExclusionRun(
	ctx context.Context,
	appointmentID int64,
	req *Request,
	durations map[string]int,
) ([]types.TimeString, error) {
	appt, err := uc.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("GetAvailableSlots: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if !appt.SameDate(req.Date) {
		return nil, nil
	}

	originalDuration, ok := durations[appt.ServiceName]
	if !ok {
		// Исходная услуга удалена - запись не участвует в занятости
		return nil, nil
	}

	run, _ := domain.SlotRun(appt.StartTime, originalDuration)
	return run, nil
}
