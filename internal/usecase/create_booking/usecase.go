package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// UseCase создание записи с проверкой графика работы и пересечений
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

// Execute создает запись. Слот проверяется на попадание в график работы и на
// пересечение с активными записями мастера; при конфликте возвращается
// *ConflictError с именем клиента и занятым окном, запись не сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	booking := &domain.Booking{
		StaffID:         req.StaffID,
		ClientID:        req.ClientID,
		StartAt:         req.StartAt,
		DurationMinutes: duration,
		Status:          domain.StatusPending,
		Services:        toSnapshots(req.Services),
		Notes:           req.Notes,
	}

	var created *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := uc.checkBusinessHours(ctx, req.StartAt); err != nil {
			return err
		}
		if err := uc.checkConflict(ctx, domain.ConflictCandidate{
			StaffID:         req.StaffID,
			StartAt:         req.StartAt,
			DurationMinutes: duration,
		}); err != nil {
			return err
		}

		var err error
		created, err = uc.bookings.Create(ctx, booking)
		if err != nil {
			return fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("Booking created: bookingID=%d staffID=%d startAt=%s duration=%d",
		created.ID, created.StaffID, created.StartAt.String(), created.DurationMinutes)
	return &Response{Booking: created}, nil
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

// checkConflict ищет пересечение с активными записями мастера.
// Окно выборки покрывает любую запись, способную пересечь кандидата:
// ни одна активная запись не длиннее MaxDurationMinutes.
func (uc *UseCase) checkConflict(ctx context.Context, candidate domain.ConflictCandidate) error {
	from := candidate.StartAt.AddMinutes(-domain.MaxDurationMinutes)
	to := candidate.StartAt.AddMinutes(candidate.DurationMinutes)

	views, err := uc.bookings.ListViewsByStaff(ctx, candidate.StaffID, from, to)
	if err != nil {
		return fmt.Errorf("%w: checkConflict - list bookings: %v", ErrInternal, err)
	}

	if conflict := domain.FindConflictInViews(candidate, views); conflict != nil {
		uc.log.Warn("Booking conflict: staffID=%d candidate=%s conflictsWith=%d",
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

func toSnapshots(services []ServiceInput) []domain.ServiceSnapshot {
	snapshots := make([]domain.ServiceSnapshot, 0, len(services))
	for _, svc := range services {
		snapshots = append(snapshots, domain.ServiceSnapshot{
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}
	return snapshots
}
