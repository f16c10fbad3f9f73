package get_appointments

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// AppointmentResponse HTTP модель записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"clientName"`
	ServiceName     string `json:"serviceName"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// AppointmentListResponse HTTP модель списка записей на дату
type AppointmentListResponse struct {
	Date         string                 `json:"date"`
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(resp.Appointments))
	for _, appt := range resp.Appointments {
		out = append(out, &AppointmentResponse{
			ID:              appt.ID,
			ClientName:      appt.ClientName,
			ServiceName:     appt.ServiceName,
			Date:            appt.Date.Format(domain.DateFormat),
			Time:            appt.StartTime.String(),
			DurationMinutes: appt.DurationMinutes,
			CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
		})
	}
	return &AppointmentListResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Appointments: out,
	}
}
