package update_booking

import (
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// Request модель запроса переноса записи
type Request struct {
	BookingID       int64
	StartAt         types.LocalDateTime
	DurationMinutes int // 0 - оставить текущую длительность
}

// Response модель ответа с перенесенной записью
type Response struct {
	Booking *domain.Booking
}
