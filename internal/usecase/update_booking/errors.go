package update_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrNotUpdatable возвращается при попытке перенести завершенную или отмененную запись
	ErrNotUpdatable = errors.New("update_booking: booking can no longer be rescheduled")

	// ErrOutsideBusinessHours возвращается, когда запрошенное время вне графика работы
	ErrOutsideBusinessHours = errors.New("update_booking: requested time is outside business hours")

	// ErrBookingConflict возвращается при пересечении с другой записью
	ErrBookingConflict = errors.New("update_booking: time slot conflicts with an existing booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

// ConflictError описывает найденное пересечение при переносе записи
type ConflictError struct {
	ConflictingBookingID int64
	ClientName           string
	StartAt              types.LocalDateTime
	EndAt                types.LocalDateTime
}

// Error возвращает человекочитаемое описание конфликта
func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"time slot is already taken by %s from %s to %s",
		e.ClientName, e.StartAt.String(), e.EndAt.String(),
	)
}

// Unwrap позволяет errors.Is(err, ErrBookingConflict)
func (e *ConflictError) Unwrap() error {
	return ErrBookingConflict
}
