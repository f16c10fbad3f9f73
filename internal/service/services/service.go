package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List получает все услуги каталога
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching service catalog")

	svcs, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(svcs))
	return models.FromDomainServiceList(svcs), nil
}

// Create добавляет услугу в каталог.
// Имя обрезается по краям и проверяется на коллизию без учета регистра
// ДО обращения к хранилищу; длительность должна быть положительным кратным
// шага сетки
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	name := strings.TrimSpace(req.Name)
	s.logger.Info("Create: adding service name=%q, duration=%d", name, req.DurationMinutes)

	if name == "" {
		s.logger.Warn("Create: empty service name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(name) > domain.MaxServiceNameLength {
		s.logger.Warn("Create: service name too long")
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if !domain.IsValidDuration(req.DurationMinutes) {
		s.logger.Warn("Create: invalid duration=%d", req.DurationMinutes)
		return nil, fmt.Errorf("%w: duration must be a positive multiple of %d minutes",
			ErrInvalidDuration, domain.SlotGranularityMinutes)
	}

	// Проверка дубликата до вставки; уникальный индекс в БД страхует от гонки
	if _, err := s.serviceRepo.GetByName(ctx, name); err == nil {
		s.logger.Warn("Create: service name=%q already exists", name)
		return nil, ErrDuplicateName
	} else if !errors.Is(err, serviceRepo.ErrServiceNotFound) {
		s.logger.Error("Create: failed to check name uniqueness: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:            name,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			s.logger.Warn("Create: service name=%q already exists (unique index)", name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Delete удаляет услугу из каталога.
// Записи, ссылающиеся на услугу, не удаляются и не переписываются: они
// сохраняют имя услуги и исключаются из дальнейшего расчета занятости
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%d", id)
	return nil
}
