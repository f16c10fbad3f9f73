package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для чтения и удаления записей.
// Создание и перенос живут в отдельных use case: им нужна транзакционная
// проверка доступности слота, здесь же только операции над снимком
type Service struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		logger:          logger,
	}
}

// GetByDate получает все записи на дату, упорядоченные по времени начала.
// Для каждой записи подставляется длительность ее услуги из каталога;
// у записей с удаленной услугой длительности нет
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByDate: fetching appointments for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		s.logger.Warn("GetByDate: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetByDate: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: GetByDate - failed to list services: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: successfully fetched %d appointments for date=%s",
		len(appts), date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(date, appts, domain.DurationIndex(services)), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetByID: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: GetByID - failed to list services: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt, domain.DurationIndex(services)), nil
}

// Delete удаляет запись.
// Другие расчеты доступности об удалении не уведомляются: следующая загрузка
// снимка дня увидит освободившиеся слоты
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}
