package domain

import "errors"

// Значения по умолчанию при отсутствии конфигурации
const (
	// DefaultOpenHour и DefaultCloseHour окно часов по умолчанию,
	// когда расписание не настроено вовсе (сетка не должна быть пустой)
	DefaultOpenHour  = 9
	DefaultCloseHour = 20

	// DefaultDurationMinutes длительность записи без услуг
	DefaultDurationMinutes = 60

	// DefaultSyncHorizonDays горизонт выборки записей для синхронизации
	DefaultSyncHorizonDays = 7

	// DefaultInvitationTTLHours срок жизни приглашения
	DefaultInvitationTTLHours = 48

	// DefaultCalendarID календарь назначения во внешнем сервисе
	DefaultCalendarID = "primary"
)

// Ограничения валидации
const (
	MaxDurationMinutes = 480 // 8 часов
	MaxNotesLength     = 500
)

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ErrInvalidBusinessHours возвращается при нарушении инварианта opensAt < closesAt
var ErrInvalidBusinessHours = errors.New("domain: opening time must be before closing time")
