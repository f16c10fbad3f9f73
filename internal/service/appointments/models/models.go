package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentResponse запись для выдачи наружу.
// DurationMinutes равен nil, если услуга записи удалена из каталога:
// запись сохраняет имя услуги, но длительность ей больше не сопоставляется
type AppointmentResponse struct {
	ID              int64
	ClientName      string
	ServiceName     string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AppointmentListResponse список записей на дату, упорядоченный по времени начала
type AppointmentListResponse struct {
	Date         time.Time
	Appointments []*AppointmentResponse
}

// FromDomainAppointment конвертирует доменную запись в response-модель
func FromDomainAppointment(appt *domain.Appointment, durations map[string]int) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:          appt.ID,
		ClientName:  appt.ClientName,
		ServiceName: appt.ServiceName,
		Date:        appt.Date,
		StartTime:   appt.StartTime,
		CreatedAt:   appt.CreatedAt,
		UpdatedAt:   appt.UpdatedAt,
	}

	if d, ok := durations[appt.ServiceName]; ok {
		resp.DurationMinutes = &d
	}

	return resp
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(date time.Time, appts []*domain.Appointment, durations map[string]int) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		out = append(out, FromDomainAppointment(appt, durations))
	}
	return &AppointmentListResponse{
		Date:         date,
		Appointments: out,
	}
}
