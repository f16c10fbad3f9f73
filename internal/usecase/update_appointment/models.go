package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на обновление записи
type Request struct {
	ID          int64            // ID редактируемой записи
	ClientName  string           // Имя клиента
	ServiceName string           // Имя услуги (может отличаться от исходной)
	Date        time.Time        // Дата записи
	StartTime   types.TimeString // Подтвержденный стартовый слот (может совпадать с исходным)
}

// Response модель ответа с обновленной записью
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
