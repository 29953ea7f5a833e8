package get_hour_axis

import "time"

// MaxDays верхняя граница диапазона сетки
const MaxDays = 31

// Request модель запроса часовой оси для сетки расписания
type Request struct {
	Start time.Time // первая дата диапазона
	Days  int       // количество дней, включая первую дату
}

// Response модель ответа с осью часов
type Response struct {
	Start time.Time
	Days  int
	Hours []int // объединение рабочих часов всех дней диапазона
}
