package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CreateServiceRequest запрос на добавление услуги в каталог
type CreateServiceRequest struct {
	Name            string
	DurationMinutes int
}

// ServiceResponse услуга для выдачи наружу
type ServiceResponse struct {
	ID              int64
	Name            string
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServiceListResponse список услуг каталога
type ServiceListResponse struct {
	Services []*ServiceResponse
}

// FromDomainService конвертирует доменную услугу в response-модель
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		CreatedAt:       svc.CreatedAt,
		UpdatedAt:       svc.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список доменных услуг
func FromDomainServiceList(svcs []*domain.Service) *ServiceListResponse {
	out := make([]*ServiceResponse, 0, len(svcs))
	for _, svc := range svcs {
		out = append(out, FromDomainService(svc))
	}
	return &ServiceListResponse{Services: out}
}
