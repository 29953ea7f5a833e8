package create_booking

import (
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	createBooking "github.com/m04kA/BRB-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// ServiceItem услуга в составе записи
type ServiceItem struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StaffID         int64         `json:"staffId"`
	ClientID        int64         `json:"clientId"`
	StartAt         string        `json:"startAt"` // "2025-10-15T10:00:00"
	DurationMinutes int           `json:"durationMinutes,omitempty"`
	Services        []ServiceItem `json:"services"`
	Notes           *string       `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
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

// ConflictInfo описание конфликтующей записи
type ConflictInfo struct {
	BookingID  int64  `json:"bookingId"`
	ClientName string `json:"clientName"`
	StartAt    string `json:"startAt"`
	EndAt      string `json:"endAt"`
}

// ConflictResponse HTTP response при пересечении записей
type ConflictResponse struct {
	Error    string       `json:"error"`
	Conflict ConflictInfo `json:"conflict"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (createBooking.Request, error) {
	startAt, err := types.ParseLocalDateTime(r.StartAt)
	if err != nil {
		return createBooking.Request{}, err
	}

	services := make([]createBooking.ServiceInput, 0, len(r.Services))
	for _, svc := range r.Services {
		services = append(services, createBooking.ServiceInput{
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}

	return createBooking.Request{
		StaffID:         r.StaffID,
		ClientID:        r.ClientID,
		StartAt:         startAt,
		DurationMinutes: r.DurationMinutes,
		Services:        services,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return bookingToResponse(resp.Booking)
}

func bookingToResponse(b *domain.Booking) *BookingResponse {
	services := make([]ServiceItem, 0, len(b.Services))
	for _, svc := range b.Services {
		services = append(services, ServiceItem{
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}

	return &BookingResponse{
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
	}
}
