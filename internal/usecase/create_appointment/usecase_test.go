package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
	createErr    error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
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

var testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

func newTestUseCase(apptRepo *fakeAppointmentRepo, svcRepo *fakeServiceRepo) *UseCase {
	return NewUseCase(apptRepo, svcRepo, fakeTxManager{}, nopLogger{})
}

func catalogFixture() *fakeServiceRepo {
	return &fakeServiceRepo{services: []*domain.Service{
		{ID: 1, Name: "Стрижка", DurationMinutes: 30},
		{ID: 2, Name: "Окрашивание", DurationMinutes: 120},
	}}
}

func TestUseCase_Execute_Success(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(apptRepo, catalogFixture())

	resp, err := uc.Execute(context.Background(), &Request{
		ClientName:  "  Анна  ",
		ServiceName: "стрижка",
		Date:        testDate,
		StartTime:   "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Анна", resp.ClientName)
	// Имя услуги сохраняется в каноническом написании каталога
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 30, resp.DurationMinutes)
	require.Len(t, apptRepo.appointments, 1)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Борис", ServiceName: "Стрижка", Date: testDate, StartTime: "10:00"},
	}, nextID: 1}
	uc := newTestUseCase(apptRepo, catalogFixture())

	_, err := uc.Execute(context.Background(), &Request{
		ClientName:  "Анна",
		ServiceName: "Стрижка",
		Date:        testDate,
		StartTime:   "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, apptRepo.appointments, 1)
}

func TestUseCase_Execute_ChainOverlap(t *testing.T) {
	// Окрашивание 14:00-16:00 занимает четыре слота
	apptRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, ClientName: "Борис", ServiceName: "Окрашивание", Date: testDate, StartTime: "14:00"},
	}, nextID: 1}
	uc := newTestUseCase(apptRepo, catalogFixture())

	_, err := uc.Execute(context.Background(), &Request{
		ClientName:  "Анна",
		ServiceName: "Стрижка",
		Date:        testDate,
		StartTime:   "15:30",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_LunchBreakBlocked(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, catalogFixture())

	for _, slot := range domain.LunchBreakSlots {
		_, err := uc.Execute(context.Background(), &Request{
			ClientName:  "Анна",
			ServiceName: "Стрижка",
			Date:        testDate,
			StartTime:   slot,
		})
		assert.ErrorIs(t, err, ErrSlotNotAvailable, "slot=%s", slot)
	}
}

func TestUseCase_Execute_ServiceDoesNotFitBeforeClose(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, catalogFixture())

	_, err := uc.Execute(context.Background(), &Request{
		ClientName:  "Анна",
		ServiceName: "Окрашивание",
		Date:        testDate,
		StartTime:   "17:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, catalogFixture())

	_, err := uc.Execute(context.Background(), &Request{
		ClientName:  "Анна",
		ServiceName: "Педикюр",
		Date:        testDate,
		StartTime:   "10:00",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, catalogFixture())

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "empty client name",
			req:     &Request{ClientName: "   ", ServiceName: "Стрижка", Date: testDate, StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty service name",
			req:     &Request{ClientName: "Анна", ServiceName: "", Date: testDate, StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero date",
			req:     &Request{ClientName: "Анна", ServiceName: "Стрижка", StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "off grid time",
			req:     &Request{ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "10:15"},
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "before opening",
			req:     &Request{ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "08:30"},
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "last half hour is not a slot",
			req:     &Request{ClientName: "Анна", ServiceName: "Стрижка", Date: testDate, StartTime: "18:30"},
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
