package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, appt := range f.appointments {
		if appt.ID == id {
			return appt, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.SameDate(date) {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	for i, appt := range f.appointments {
		if appt.ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return appointmentRepo.ErrAppointmentNotFound
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (f *fakeServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	return f.services, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

func TestService_GetByDate(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "09:00"},
		{ID: 2, ClientName: "Борис", ServiceName: "Педикюр", Date: testDate, StartTime: "11:00"},
		{ID: 3, ClientName: "Вера", ServiceName: "Стрижка", Date: testDate.AddDate(0, 0, 1), StartTime: "09:00"},
	}}
	svcRepo := &fakeServiceRepo{services: []*domain.Service{
		{ID: 1, Name: "Стрижка", DurationMinutes: 30},
	}}
	svc := NewService(apptRepo, svcRepo, nopLogger{})

	resp, err := svc.GetByDate(context.Background(), testDate)

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 2)

	// Длительность из каталога
	require.NotNil(t, resp.Appointments[0].DurationMinutes)
	assert.Equal(t, 30, *resp.Appointments[0].DurationMinutes)

	// Услуга "Педикюр" удалена из каталога: запись остается, длительности нет
	assert.Equal(t, "Педикюр", resp.Appointments[1].ServiceName)
	assert.Nil(t, resp.Appointments[1].DurationMinutes)
}

func TestService_GetByDate_ZeroDate(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeServiceRepo{}, nopLogger{})

	_, err := svc.GetByDate(context.Background(), time.Time{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByID(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "09:00"},
	}}
	svcRepo := &fakeServiceRepo{services: []*domain.Service{
		{ID: 1, Name: "Стрижка", DurationMinutes: 30},
	}}
	svc := NewService(apptRepo, svcRepo, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Анна", resp.ClientName)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
			{ID: 1, ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "09:00"},
		}}
		svc := NewService(apptRepo, &fakeServiceRepo{}, nopLogger{})

		require.NoError(t, svc.Delete(context.Background(), 1))
		assert.Empty(t, apptRepo.appointments)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeAppointmentRepo{}, &fakeServiceRepo{}, nopLogger{})
		assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrAppointmentNotFound)
	})
}
