package update_appointment

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
			copied := *appt
			return &copied, nil
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

func (f *fakeAppointmentRepo) Update(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	for i, existing := range f.appointments {
		if existing.ID == appt.ID {
			updated := *appt
			updated.UpdatedAt = time.Now()
			f.appointments[i] = &updated
			return &updated, nil
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testDate      = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	otherTestDate = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
)

func catalogFixture() *fakeServiceRepo {
	return &fakeServiceRepo{services: []*domain.Service{
		{ID: 1, Name: "Стрижка", DurationMinutes: 30},
		{ID: 2, Name: "Укладка", DurationMinutes: 60},
	}}
}

func TestUseCase_Execute_KeepOriginalTime(t *testing.T) {
	// Запись не должна блокировать сама себя: подтверждение исходного
	// времени без изменений - легальное обновление
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Анна", ServiceName: "Укладка", Date: testDate, StartTime: "10:00"},
	}}
	uc := NewUseCase(repo, catalogFixture(), fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:          1,
		ClientName:  "Анна",
		ServiceName: "Укладка",
		Date:        testDate,
		StartTime:   "10:00",
	})

	require.NoError(t, err)
	assert.EqualValues(t, "10:00", resp.StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestUseCase_Execute_MoveWithinDay(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Анна", ServiceName: "Укладка", Date: testDate, StartTime: "10:00"},
	}}
	uc := NewUseCase(repo, catalogFixture(), fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:          1,
		ClientName:  "Анна",
		ServiceName: "Укладка",
		Date:        testDate,
		StartTime:   "10:30",
	})

	require.NoError(t, err)
	assert.EqualValues(t, "10:30", resp.StartTime)
	assert.EqualValues(t, "10:30", repo.appointments[0].StartTime)
}

func TestUseCase_Execute_TargetSlotTakenByOther(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "10:00"},
		{ID: 2, ClientName: "Борис", ServiceName: "Стрижка", Date: testDate, StartTime: "11:00"},
	}}
	uc := NewUseCase(repo, catalogFixture(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:          1,
		ClientName:  "Анна",
		ServiceName: "Стрижка",
		Date:        testDate,
		StartTime:   "11:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_ServiceChangeUsesOriginalDurationForExclusion(t *testing.T) {
	// Исходная услуга часовая (10:00-11:00); смена на получасовую с тем же
	// стартом должна пройти - исключение строится по исходной длительности
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Анна", ServiceName: "Укладка", Date: testDate, StartTime: "10:00"},
	}}
	uc := NewUseCase(repo, catalogFixture(), fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:          1,
		ClientName:  "Анна",
		ServiceName: "Стрижка",
		Date:        testDate,
		StartTime:   "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestUseCase_Execute_MoveToOtherDate_NoSelfExclusion(t *testing.T) {
	// На целевой дате запись занятости не создает, а чужая запись блокирует
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "10:00"},
		{ID: 2, ClientName: "Борис", ServiceName: "Стрижка", Date: otherTestDate, StartTime: "10:00"},
	}}
	uc := NewUseCase(repo, catalogFixture(), fakeTxManager{}, nopLogger{})

	t.Run("occupied target slot rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			ID:          1,
			ClientName:  "Анна",
			ServiceName: "Стрижка",
			Date:        otherTestDate,
			StartTime:   "10:00",
		})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("free target slot accepted", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			ID:          1,
			ClientName:  "Анна",
			ServiceName: "Стрижка",
			Date:        otherTestDate,
			StartTime:   "10:30",
		})
		require.NoError(t, err)
		assert.True(t, resp.Date.Equal(otherTestDate))
	})
}

func TestUseCase_Execute_AppointmentNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, catalogFixture(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:          42,
		ClientName:  "Анна",
		ServiceName: "Стрижка",
		Date:        testDate,
		StartTime:   "10:00",
	})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUseCase_Execute_NewServiceNotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "10:00"},
	}}
	uc := NewUseCase(repo, catalogFixture(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:          1,
		ClientName:  "Анна",
		ServiceName: "Педикюр",
		Date:        testDate,
		StartTime:   "10:00",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, catalogFixture(), fakeTxManager{}, nopLogger{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing id",
			req:     &Request{ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty client name",
			req:     &Request{ID: 1, ClientName: "", ServiceName: "Стрижка", Date: testDate, StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "off grid time",
			req:     &Request{ID: 1, ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "10:15"},
			wantErr: ErrInvalidTimeSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
