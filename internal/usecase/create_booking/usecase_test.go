package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/ptr"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	views   []*domain.BookingView
	created *domain.Booking
	nextID  int64
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	r.created = &created
	return &created, nil
}

func (r *fakeBookingRepo) ListViewsByStaff(_ context.Context, staffID int64, from, to types.LocalDateTime) ([]*domain.BookingView, error) {
	return r.views, nil
}

type fakeHoursRepo struct {
	hours []domain.BusinessHours
}

func (r *fakeHoursRepo) GetAll(_ context.Context) ([]domain.BusinessHours, error) {
	return r.hours, nil
}

func openAllWeek() []domain.BusinessHours {
	days := []domain.Weekday{
		domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday,
		domain.Friday, domain.Saturday, domain.Sunday,
	}
	hours := make([]domain.BusinessHours, 0, len(days))
	for _, d := range days {
		hours = append(hours, domain.BusinessHours{
			Weekday: d, OpensAt: "09:00", ClosesAt: "20:00", IsOpen: true,
		})
	}
	return hours
}

func validRequest() Request {
	return Request{
		StaffID:  5,
		ClientID: 100,
		StartAt:  types.NewLocalDateTime(2026, 9, 7, 10, 0, 0),
		Services: []ServiceInput{{ServiceID: 1, Name: "Corte", Price: 250}},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, hours *fakeHoursRepo) *UseCase {
	return New(bookings, hours, fakeTxManager{}, &fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}, nopLogger{})
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 42}
	uc := newTestUseCase(repo, &fakeHoursRepo{hours: openAllWeek()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	// без явной длительности берется значение по умолчанию
	assert.Equal(t, domain.DefaultDurationMinutes, resp.Booking.DurationMinutes)
	require.Len(t, resp.Booking.Services, 1)
	assert.Equal(t, "Corte", resp.Booking.Services[0].Name)
}

func TestExecute_Conflict(t *testing.T) {
	existing := &domain.BookingView{
		Booking: domain.Booking{
			ID:              7,
			StaffID:         5,
			StartAt:         types.NewLocalDateTime(2026, 9, 7, 10, 0, 0),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
		ClientName: "Carlos",
	}
	repo := &fakeBookingRepo{nextID: 42, views: []*domain.BookingView{existing}}
	uc := newTestUseCase(repo, &fakeHoursRepo{hours: openAllWeek()})

	req := validRequest()
	req.StartAt = types.NewLocalDateTime(2026, 9, 7, 10, 30, 0)
	req.DurationMinutes = 30

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingConflict)

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, int64(7), conflict.ConflictingBookingID)
	assert.Equal(t, "Carlos", conflict.ClientName)
	assert.Equal(t, types.NewLocalDateTime(2026, 9, 7, 10, 0, 0), conflict.StartAt)
	assert.Equal(t, types.NewLocalDateTime(2026, 9, 7, 11, 0, 0), conflict.EndAt)

	// при конфликте запись не сохраняется
	assert.Nil(t, repo.created)
}

func TestExecute_AdjacentSlotIsNotConflict(t *testing.T) {
	existing := &domain.BookingView{
		Booking: domain.Booking{
			ID:              7,
			StaffID:         5,
			StartAt:         types.NewLocalDateTime(2026, 9, 7, 10, 0, 0),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	}
	repo := &fakeBookingRepo{nextID: 42, views: []*domain.BookingView{existing}}
	uc := newTestUseCase(repo, &fakeHoursRepo{hours: openAllWeek()})

	req := validRequest()
	req.StartAt = types.NewLocalDateTime(2026, 9, 7, 11, 0, 0)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{nextID: 1}, &fakeHoursRepo{hours: openAllWeek()})

	req := validRequest()
	req.StartAt = types.NewLocalDateTime(2026, 9, 7, 22, 0, 0)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_ClosingHourIsBookable(t *testing.T) {
	// час закрытия - допустимое начало последнего слота
	uc := newTestUseCase(&fakeBookingRepo{nextID: 1}, &fakeHoursRepo{hours: openAllWeek()})

	req := validRequest()
	req.StartAt = types.NewLocalDateTime(2026, 9, 7, 20, 0, 0)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{nextID: 1}, &fakeHoursRepo{hours: openAllWeek()})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero staff", func(r *Request) { r.StaffID = 0 }},
		{"zero client", func(r *Request) { r.ClientID = 0 }},
		{"zero start", func(r *Request) { r.StartAt = types.LocalDateTime{} }},
		{"no services", func(r *Request) { r.Services = nil }},
		{"negative duration", func(r *Request) { r.DurationMinutes = -30 }},
		{"excessive duration", func(r *Request) { r.DurationMinutes = domain.MaxDurationMinutes + 1 }},
		{"oversized notes", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
