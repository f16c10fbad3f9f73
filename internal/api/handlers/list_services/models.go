package list_services

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

// ServiceResponse HTTP модель услуги каталога
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ServiceListResponse HTTP модель списка услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(resp *models.ServiceListResponse) *ServiceListResponse {
	out := make([]*ServiceResponse, 0, len(resp.Services))
	for _, svc := range resp.Services {
		out = append(out, &ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			CreatedAt:       svc.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       svc.UpdatedAt.Format(time.RFC3339),
		})
	}
	return &ServiceListResponse{Services: out}
}
