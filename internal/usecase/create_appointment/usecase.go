package create_appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case для создания записи
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

// Execute выполняет use case создания записи.
// Проверка доступности и вставка идут в сериализуемой транзакции со снимком
// дня под FOR UPDATE: два конкурентных бронирования одного слота не могут
// пройти одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%q, service=%q, date=%s, time=%s",
		req.ClientName, req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var (
		result          *domain.Appointment
		durationMinutes int
	)

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем каталог услуг и находим запрошенную
		services, err := uc.serviceRepo.List(txCtx)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list services: %v", err)
			return fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
		}

		service := domain.FindServiceByName(services, req.ServiceName)
		if service == nil {
			uc.logger.Warn("CreateAppointment: service %q not found", req.ServiceName)
			return ErrServiceNotFound
		}
		durationMinutes = service.DurationMinutes

		// 2.2. Снимок записей дня с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 2.3. Проверяем, что запрошенный слот входит в список кандидатов
		occupancy := domain.ExpandOccupancy(appointments, domain.DurationIndex(services))
		blocked := domain.BlockedSlots(occupancy, nil)
		candidates := domain.ResolveAvailableSlots(service.DurationMinutes, blocked)

		if !domain.ContainsSlot(candidates, req.StartTime) {
			uc.logger.Warn("CreateAppointment: slot %s not available for service=%q (%d candidates)",
				req.StartTime, service.Name, len(candidates))
			return ErrSlotNotAvailable
		}

		// 2.4. Создаем запись; имя услуги сохраняем в каноническом написании каталога
		appt := &domain.Appointment{
			ClientName:  strings.TrimSpace(req.ClientName),
			ServiceName: service.Name,
			Date:        req.Date,
			StartTime:   req.StartTime,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return toResponse(result, durationMinutes), nil
}
