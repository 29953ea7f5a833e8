package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	bookingstore "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// UseCase перенос записи на другое время.
// Сама переносимая запись исключается из проверки пересечений:
// перенос внутри собственного окна не считается конфликтом.
type UseCase struct {
	bookings     BookingRepository
	hours        HoursRepository
	txManager    TxManager
	timeProvider TimeProvider
	log          Logger
}

// New создает новый экземпляр UseCase
func New(bookings BookingRepository, hours HoursRepository, txManager TxManager, timeProvider TimeProvider, log Logger) *UseCase {
	return &UseCase{
		bookings:     bookings,
		hours:        hours,
		txManager:    txManager,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute переносит запись на новое время
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var updated *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := uc.bookings.GetByID(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingstore.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Execute - get booking: %v", ErrInternal, err)
		}
		if !booking.CanBeUpdated() {
			return fmt.Errorf("%w: status=%s", ErrNotUpdatable, booking.Status)
		}

		duration := req.DurationMinutes
		if duration == 0 {
			duration = booking.DurationMinutes
		}

		if err := uc.checkBusinessHours(ctx, req.StartAt); err != nil {
			return err
		}
		if err := uc.checkConflict(ctx, domain.ConflictCandidate{
			StaffID:          booking.StaffID,
			StartAt:          req.StartAt,
			DurationMinutes:  duration,
			ExcludeBookingID: &booking.ID,
		}); err != nil {
			return err
		}

		if err := uc.bookings.UpdateSchedule(ctx, booking.ID, req.StartAt, duration); err != nil {
			return fmt.Errorf("%w: Execute - update schedule: %v", ErrInternal, err)
		}

		booking.StartAt = req.StartAt
		booking.DurationMinutes = duration
		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("Booking rescheduled: bookingID=%d startAt=%s duration=%d",
		updated.ID, updated.StartAt.String(), updated.DurationMinutes)
	return &Response{Booking: updated}, nil
}

// checkBusinessHours проверяет, что час начала входит в рабочие часы дня
func (uc *UseCase) checkBusinessHours(ctx context.Context, startAt types.LocalDateTime) error {
	hours, err := uc.hours.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: checkBusinessHours - get hours: %v", ErrInternal, err)
	}

	year, month, day := startAt.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	for _, h := range domain.AvailableHours(date, hours) {
		if h == startAt.Hour() {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOutsideBusinessHours, startAt.String())
}

// checkConflict ищет пересечение с другими активными записями мастера
func (uc *UseCase) checkConflict(ctx context.Context, candidate domain.ConflictCandidate) error {
	from := candidate.StartAt.AddMinutes(-domain.MaxDurationMinutes)
	to := candidate.StartAt.AddMinutes(candidate.DurationMinutes)

	views, err := uc.bookings.ListViewsByStaff(ctx, candidate.StaffID, from, to)
	if err != nil {
		return fmt.Errorf("%w: checkConflict - list bookings: %v", ErrInternal, err)
	}

	if conflict := domain.FindConflictInViews(candidate, views); conflict != nil {
		uc.log.Warn("Reschedule conflict: staffID=%d candidate=%s conflictsWith=%d",
			candidate.StaffID, candidate.StartAt.String(), conflict.ID)
		return &ConflictError{
			ConflictingBookingID: conflict.ID,
			ClientName:           conflict.ClientName,
			StartAt:              conflict.StartAt,
			EndAt:                conflict.EndAt(),
		}
	}
	return nil
}
