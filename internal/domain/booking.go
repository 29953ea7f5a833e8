package domain

import (
	"time"

	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// ServiceSnapshot снимок услуги на момент создания записи
// Хранится вместе с записью, не является живой ссылкой на каталог услуг
type ServiceSnapshot struct {
	ServiceID int64
	Name      string
	Price     float64
}

// Booking represents a scheduled service session for one client with one barber
type Booking struct {
	ID              int64
	StaffID         int64
	ClientID        int64
	StartAt         types.LocalDateTime // локальный литерал, без зоны
	DurationMinutes int                 // сумма длительностей услуг
	Status          BookingStatus
	Services        []ServiceSnapshot
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its time interval
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking can be rescheduled
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// EndAt возвращает конец интервала записи (полуоткрытый интервал [StartAt, EndAt))
func (b *Booking) EndAt() types.LocalDateTime {
	return b.StartAt.AddMinutes(b.DurationMinutes)
}

// BookingView денормализованная модель записи для чтения:
// запись плюс данные клиента, мастера и названия услуг из одного запроса.
// Используется протоколом синхронизации и экранами расписания.
type BookingView struct {
	Booking
	ClientName  string
	ClientPhone *string
	StaffName   string
}

// ServiceNames возвращает названия услуг в порядке снимков
func (v *BookingView) ServiceNames() []string {
	names := make([]string, 0, len(v.Services))
	for _, s := range v.Services {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

// StaffBookingsFilter фильтр для получения записей мастера
type StaffBookingsFilter struct {
	StaffID         int64                // Обязательный параметр
	From            *types.LocalDateTime // Начало периода (включительно)
	To              *types.LocalDateTime // Конец периода (исключительно)
	Status          *BookingStatus       // Фильтр по статусу (опционально)
	IncludeInactive bool                 // Включать ли отмененные и no-show
}

// InactiveStatuses статусы, не занимающие время мастера
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
