package get_staff_bookings

import (
	"context"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

type BookingsService interface {
	ListByStaff(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
