package domain

import "github.com/m04kA/BRB-SchedulingService/pkg/types"

// ConflictCandidate кандидат на создание или перенос записи
type ConflictCandidate struct {
	StaffID          int64
	StartAt          types.LocalDateTime
	DurationMinutes  int
	ExcludeBookingID *int64 // при редактировании запись не конфликтует сама с собой
}

// FindConflict возвращает первую запись того же мастера, интервал которой
// пересекается с интервалом кандидата, либо nil.
//
// Интервалы полуоткрытые [start, start+duration): пересечение есть только при
// candidateStart < existingEnd И candidateEnd > existingStart. Соприкасающиеся
// границы (одна запись заканчивается ровно когда начинается другая) конфликтом
// не считаются. Отмененные и no-show записи время не занимают.
//
// Порядок existing определяет вызывающая сторона; возвращается первое
// совпадение без какой-либо приоритизации.
func FindConflict(candidate ConflictCandidate, existing []*Booking) *Booking {
	candidateEnd := candidate.StartAt.AddMinutes(candidate.DurationMinutes)

	for _, booking := range existing {
		if booking.StaffID != candidate.StaffID {
			continue
		}
		if !booking.IsActive() {
			continue
		}
		if candidate.ExcludeBookingID != nil && booking.ID == *candidate.ExcludeBookingID {
			continue
		}

		existingEnd := booking.EndAt()
		if candidate.StartAt.Before(existingEnd) && candidateEnd.After(booking.StartAt) {
			return booking
		}
	}

	return nil
}

// FindConflictInViews версия FindConflict для денормализованных записей
// Возвращает конфликтующую запись с данными клиента для сообщения пользователю
func FindConflictInViews(candidate ConflictCandidate, existing []*BookingView) *BookingView {
	candidateEnd := candidate.StartAt.AddMinutes(candidate.DurationMinutes)

	for _, view := range existing {
		if view.StaffID != candidate.StaffID {
			continue
		}
		if !view.IsActive() {
			continue
		}
		if candidate.ExcludeBookingID != nil && view.ID == *candidate.ExcludeBookingID {
			continue
		}

		existingEnd := view.EndAt()
		if candidate.StartAt.Before(existingEnd) && candidateEnd.After(view.StartAt) {
			return view
		}
	}

	return nil
}
