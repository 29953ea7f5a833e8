package googlecalendar

import "time"

// Token результат обмена кода или обновления access token
type Token struct {
	AccessToken  string
	RefreshToken string // пустой при refresh (Google его не возвращает повторно)
	TokenType    string
	Scope        string
	ExpiresAt    time.Time
}

// EventInput данные события для внешнего календаря.
// StartLocal/EndLocal - локальные литералы "YYYY-MM-DDTHH:MM:SS" без зоны,
// TimeZone - IANA-идентификатор, интерпретацию пары выполняет Google.
type EventInput struct {
	Summary     string
	Description string
	StartLocal  string
	EndLocal    string
	TimeZone    string
}

// EventResult созданное событие внешнего календаря
type EventResult struct {
	EventID string
	Status  string
}
