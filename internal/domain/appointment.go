package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Appointment запись клиента на услугу.
// Услуга ссылается по имени: при удалении услуги записи не удаляются и не
// переписываются, они лишь перестают учитываться при расчете занятости
type Appointment struct {
	ID          int64
	ClientName  string
	ServiceName string
	Date        time.Time // только дата, время суток в StartTime
	StartTime   types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SameDate возвращает true, если запись относится к указанной дате
func (a *Appointment) SameDate(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
