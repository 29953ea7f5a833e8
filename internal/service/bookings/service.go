package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	bookingstore "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/booking"
)

// Service чтение записей для экранов расписания
type Service struct {
	bookings BookingRepository
	log      Logger
}

// NewService создает новый экземпляр Service
func NewService(bookings BookingRepository, log Logger) *Service {
	return &Service{
		bookings: bookings,
		log:      log,
	}
}

// GetByID возвращает запись по ID вместе со снимками услуг
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}
	return booking, nil
}

// ListByStaff возвращает записи мастера по фильтру, отсортированные по началу
func (s *Service) ListByStaff(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	if filter.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	list, err := s.bookings.GetByStaffWithFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff: %v", ErrInternal, err)
	}
	return list, nil
}
