package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrOutsideBusinessHours возвращается, когда запрошенное время вне графика работы
	ErrOutsideBusinessHours = errors.New("create_booking: requested time is outside business hours")

	// ErrBookingConflict возвращается при пересечении с существующей записью
	ErrBookingConflict = errors.New("create_booking: time slot conflicts with an existing booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError описывает найденное пересечение: кто и на какое окно уже записан.
// Оборачивает ErrBookingConflict, поэтому работает и errors.Is, и errors.As.
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
