package create_booking

import (
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// ServiceInput услуга в составе создаваемой записи (снимок каталога на момент брони)
type ServiceInput struct {
	ServiceID int64
	Name      string
	Price     float64
}

// Request модель запроса создания записи
type Request struct {
	StaffID         int64
	ClientID        int64
	StartAt         types.LocalDateTime
	DurationMinutes int // 0 - взять длительность по умолчанию
	Services        []ServiceInput
	Notes           *string
}

// Response модель ответа с созданной записью
type Response struct {
	Booking *domain.Booking
}
