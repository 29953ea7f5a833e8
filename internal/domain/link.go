package domain

import "time"

// LinkStatus статус связи записи с внешним событием
type LinkStatus string

const (
	// LinkStatusConfirmed событие создано во внешнем календаре
	LinkStatusConfirmed LinkStatus = "confirmed"
	// LinkStatusError создание события завершилось ошибкой;
	// причина сохранена в LastError, EventID пуст
	LinkStatusError LinkStatus = "error"
)

// EventLink связь одной записи с одним событием внешнего календаря.
// Пара (BookingID, StaffID) уникальна - это ключ идемпотентности,
// предотвращающий дублирование внешних событий при повторных синхронизациях.
// При ошибке строка перезаписывается (upsert) с причиной отказа.
type EventLink struct {
	BookingID  int64
	StaffID    int64
	CalendarID string
	EventID    string // пустой при Status == LinkStatusError
	Status     LinkStatus
	LastError  *string
	SyncedAt   time.Time
}
