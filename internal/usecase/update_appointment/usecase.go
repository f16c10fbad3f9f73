package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для обновления записи (перенос времени, смена услуги или клиента)
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case обновления записи.
// Перед проверкой доступности собственная цепочка записи (по ИСХОДНОЙ услуге)
// исключается из занятости - запись не должна блокировать сама себя, поэтому
// подтвержденное время может совпадать с исходным
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, client=%q, service=%q, date=%s, time=%s",
		req.ID, req.ClientName, req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	var (
		result          *domain.Appointment
		durationMinutes int
	)

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем редактируемую запись
		existing, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Загружаем каталог услуг и находим новую услугу
		services, err := uc.serviceRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to list services: %v", err)
			return fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
		}

		service := domain.FindServiceByName(services, req.ServiceName)
		if service == nil {
			uc.logger.Warn("UpdateAppointment: service %q not found", req.ServiceName)
			return ErrServiceNotFound
		}
		durationMinutes = service.DurationMinutes

		// 2.3. Снимок записей целевой даты с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		durations := domain.DurationIndex(services)
		occupancy := domain.ExpandOccupancy(appointments, durations)

		// 2.4. Самоисключение: цепочка исходной записи по ее исходной услуге.
		// Если запись переносится с другой даты или ее исходная услуга удалена,
		// занятости на целевой дате она не создает
		var selfExclusion []types.TimeString
		if existing.SameDate(req.Date) {
			if originalDuration, ok := durations[existing.ServiceName]; ok {
				selfExclusion, _ = domain.SlotRun(existing.StartTime, originalDuration)
			}
		}

		// 2.5. Проверяем, что подтвержденный слот входит в список кандидатов
		blocked := domain.BlockedSlots(occupancy, selfExclusion)
		candidates := domain.ResolveAvailableSlots(service.DurationMinutes, blocked)

		if !domain.ContainsSlot(candidates, req.StartTime) {
			uc.logger.Warn("UpdateAppointment: slot %s not available for service=%q (%d candidates)",
				req.StartTime, service.Name, len(candidates))
			return ErrSlotNotAvailable
		}

		// 2.6. Обновляем запись
		existing.ClientName = strings.TrimSpace(req.ClientName)
		existing.ServiceName = service.Name
		existing.Date = req.Date
		existing.StartTime = req.StartTime

		updated, err := uc.appointmentRepo.Update(txCtx, existing)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return toResponse(result, durationMinutes), nil
}
