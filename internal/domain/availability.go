package domain

import (
	"sort"
	"time"
)

// findHoursForDay возвращает рабочие часы на день недели указанной даты
func findHoursForDay(date time.Time, hours []BusinessHours) *BusinessHours {
	weekday := WeekdayFromTime(date)
	for i := range hours {
		if hours[i].Weekday == weekday {
			return &hours[i]
		}
	}
	return nil
}

// IsDayClosed возвращает true, если на день недели даты нет активной записи расписания
func IsDayClosed(date time.Time, hours []BusinessHours) bool {
	entry := findHoursForDay(date, hours)
	return entry == nil || !entry.IsOpen
}

// AvailableHours возвращает упорядоченный список часов, доступных для начала
// записи в указанную дату.
//
// Час закрытия включается как допустимое начало записи - поведение унаследовано
// от настольного приложения, где последний слот начинается в час закрытия.
//
// Деградация вместо ошибок: закрытый или несконфигурированный день дает пустой
// список, полностью пустая таблица расписания - окно по умолчанию 9..20,
// чтобы сетка календаря никогда не была пустой.
func AvailableHours(date time.Time, hours []BusinessHours) []int {
	if len(hours) == 0 {
		return defaultHourWindow()
	}

	entry := findHoursForDay(date, hours)
	if entry == nil || !entry.IsOpen {
		return []int{}
	}

	result := make([]int, 0, entry.ClosesAt.Hour()-entry.OpensAt.Hour()+1)
	for hour := entry.OpensAt.Hour(); hour <= entry.ClosesAt.Hour(); hour++ {
		result = append(result, hour)
	}
	return result
}

// UnionOfHours возвращает отсортированное объединение доступных часов по всем
// датам - общая ось часов для многодневной сетки расписания.
// При пустом объединении (все дни закрыты или расписание не настроено)
// возвращает окно по умолчанию.
func UnionOfHours(days []time.Time, hours []BusinessHours) []int {
	set := make(map[int]struct{})
	for _, day := range days {
		entry := findHoursForDay(day, hours)
		if entry == nil || !entry.IsOpen {
			continue
		}
		for hour := entry.OpensAt.Hour(); hour <= entry.ClosesAt.Hour(); hour++ {
			set[hour] = struct{}{}
		}
	}

	if len(set) == 0 {
		return defaultHourWindow()
	}

	result := make([]int, 0, len(set))
	for hour := range set {
		result = append(result, hour)
	}
	sort.Ints(result)
	return result
}

func defaultHourWindow() []int {
	result := make([]int, 0, DefaultCloseHour-DefaultOpenHour+1)
	for hour := DefaultOpenHour; hour <= DefaultCloseHour; hour++ {
		result = append(result, hour)
	}
	return result
}
