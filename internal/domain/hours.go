package domain

import (
	"time"

	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// Weekday день недели расписания (закрытый enum)
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// WeekdayFromTime возвращает день недели локального календарного дня
func WeekdayFromTime(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// BusinessHours рабочие часы на один день недели
// Создаются и редактируются только через конфигурацию, для планирования read-only
type BusinessHours struct {
	Weekday  Weekday
	OpensAt  types.TimeString
	ClosesAt types.TimeString
	IsOpen   bool
}

// Validate проверяет инвариант: если день открыт, открытие раньше закрытия
func (h *BusinessHours) Validate() error {
	if !h.IsOpen {
		return nil
	}
	if err := h.OpensAt.Validate(); err != nil {
		return err
	}
	if err := h.ClosesAt.Validate(); err != nil {
		return err
	}
	if !h.OpensAt.IsBefore(h.ClosesAt) {
		return ErrInvalidBusinessHours
	}
	return nil
}
