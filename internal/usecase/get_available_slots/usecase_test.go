package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
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

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, appt := range f.appointments {
		if appt.ID == id {
			return appt, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
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

func catalogFixture() *fakeServiceRepo {
	return &fakeServiceRepo{services: []*domain.Service{
		{ID: 1, Name: "Стрижка", DurationMinutes: 30},
		{ID: 2, Name: "Укладка", DurationMinutes: 60},
		{ID: 3, Name: "Окрашивание", DurationMinutes: 120},
	}}
}

func TestUseCase_Execute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, catalogFixture(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testDate,
		ServiceName: "Стрижка",
	})

	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, "Стрижка", resp.ServiceName)

	// Свободен весь день, кроме обеденного перерыва
	assert.Len(t, resp.Slots, domain.GridSize-2)
	assert.NotContains(t, resp.Slots, types.TimeString("12:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("12:30"))
}

func TestUseCase_Execute_SlotsAreOrdered(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, catalogFixture(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testDate,
		ServiceName: "Укладка",
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].IsBefore(resp.Slots[i]))
	}
}

func TestUseCase_Execute_OccupiedSlotsExcluded(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ServiceName: "Окрашивание", Date: testDate, StartTime: "14:00"},
	}}
	uc := NewUseCase(repo, catalogFixture(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testDate,
		ServiceName: "Стрижка",
	})

	require.NoError(t, err)
	for _, taken := range []types.TimeString{"14:00", "14:30", "15:00", "15:30"} {
		assert.NotContains(t, resp.Slots, taken)
	}
	assert.Contains(t, resp.Slots, types.TimeString("13:30"))
	assert.Contains(t, resp.Slots, types.TimeString("16:00"))
}

func TestUseCase_Execute_NoServiceSelected(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, catalogFixture(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, 0, resp.DurationMinutes)
}

func TestUseCase_Execute_UnknownService(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, catalogFixture(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testDate,
		ServiceName: "Педикюр",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_EditMode(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ServiceName: "Укладка", Date: testDate, StartTime: "10:00"},
		{ID: 2, ServiceName: "Стрижка", Date: testDate, StartTime: "15:00"},
	}}
	uc := NewUseCase(repo, catalogFixture(), nopLogger{})

	t.Run("own chain does not block", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			Date:                 testDate,
			ServiceName:          "Укладка",
			ExcludeAppointmentID: ptr.Ptr(int64(1)),
		})

		require.NoError(t, err)
		assert.Contains(t, resp.Slots, types.TimeString("10:00"))
		assert.Contains(t, resp.Slots, types.TimeString("10:30"))
		// Чужая запись блокирует по-прежнему
		assert.NotContains(t, resp.Slots, types.TimeString("15:00"))
	})

	t.Run("without exclusion own chain blocks", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			Date:        testDate,
			ServiceName: "Укладка",
		})

		require.NoError(t, err)
		assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
		assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
	})

	t.Run("excluded appointment on another date changes nothing", func(t *testing.T) {
		otherDate := testDate.AddDate(0, 0, 1)
		withOther := &fakeAppointmentRepo{appointments: []*domain.Appointment{
			{ID: 1, ServiceName: "Укладка", Date: otherDate, StartTime: "10:00"},
		}}
		ucOther := NewUseCase(withOther, catalogFixture(), nopLogger{})

		resp, err := ucOther.Execute(context.Background(), &Request{
			Date:                 testDate,
			ServiceName:          "Стрижка",
			ExcludeAppointmentID: ptr.Ptr(int64(1)),
		})

		require.NoError(t, err)
		assert.Len(t, resp.Slots, domain.GridSize-2)
	})

	t.Run("excluded appointment not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			Date:                 testDate,
			ServiceName:          "Стрижка",
			ExcludeAppointmentID: ptr.Ptr(int64(99)),
		})

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, catalogFixture(), nopLogger{})

	t.Run("zero date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{ServiceName: "Стрижка"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non positive exclude id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			Date:                 testDate,
			ServiceName:          "Стрижка",
			ExcludeAppointmentID: ptr.Ptr(int64(0)),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
