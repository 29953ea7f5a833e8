package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListViewsByStaff(ctx context.Context, staffID int64, from, to types.LocalDateTime) ([]*domain.BookingView, error)
	UpdateSchedule(ctx context.Context, id int64, startAt types.LocalDateTime, durationMinutes int) error
}

// HoursRepository интерфейс репозитория графика работы
type HoursRepository interface {
	GetAll(ctx context.Context) ([]domain.BusinessHours, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
