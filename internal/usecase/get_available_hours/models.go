package get_available_hours

import "time"

// Request модель запроса доступных часов на день
type Request struct {
	Date time.Time // интересует только календарная дата
}

// Response модель ответа со списком доступных часов
type Response struct {
	Date   time.Time
	Closed bool  // день выходной по графику
	Hours  []int // часы начала слотов по возрастанию, пусто если Closed
}
