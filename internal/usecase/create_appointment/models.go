package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName  string           // Имя клиента
	ServiceName string           // Имя услуги из каталога
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Стартовый слот ("10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ClientName      string
	ServiceName     string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toResponse(appt *domain.Appointment, durationMinutes int) *Response {
	return &Response{
		ID:              appt.ID,
		ClientName:      appt.ClientName,
		ServiceName:     appt.ServiceName,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		DurationMinutes: durationMinutes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
