package get_staff_bookings

import (
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// ServiceItem услуга в составе записи
type ServiceItem struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// BookingItem одна запись в списке
type BookingItem struct {
	ID              int64         `json:"id"`
	StaffID         int64         `json:"staffId"`
	ClientID        int64         `json:"clientId"`
	StartAt         string        `json:"startAt"`
	DurationMinutes int           `json:"durationMinutes"`
	Status          string        `json:"status"`
	Services        []ServiceItem `json:"services"`
	Notes           *string       `json:"notes,omitempty"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

// StaffBookingsResponse HTTP response model
type StaffBookingsResponse struct {
	StaffID  int64         `json:"staffId"`
	Bookings []BookingItem `json:"bookings"`
}

// FromDomain конвертирует список доменных моделей в HTTP response
func FromDomain(staffID int64, bookings []*domain.Booking) *StaffBookingsResponse {
	items := make([]BookingItem, 0, len(bookings))
	for _, b := range bookings {
		services := make([]ServiceItem, 0, len(b.Services))
		for _, svc := range b.Services {
			services = append(services, ServiceItem{
				ServiceID: svc.ServiceID,
				Name:      svc.Name,
				Price:     svc.Price,
			})
		}
		items = append(items, BookingItem{
			ID:              b.ID,
			StaffID:         b.StaffID,
			ClientID:        b.ClientID,
			StartAt:         b.StartAt.String(),
			DurationMinutes: b.DurationMinutes,
			Status:          string(b.Status),
			Services:        services,
			Notes:           b.Notes,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
		})
	}
	return &StaffBookingsResponse{
		StaffID:  staffID,
		Bookings: items,
	}
}
