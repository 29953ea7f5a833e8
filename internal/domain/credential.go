package domain

import "time"

// ProviderGoogle единственный поддерживаемый провайдер внешнего календаря
const ProviderGoogle = "google"

// CalendarCredential OAuth-учетные данные мастера для внешнего календаря
// Не более одной живой записи на пару (staff_id, provider)
type CalendarCredential struct {
	StaffID      int64
	Provider     string
	AccessToken  string
	RefreshToken string
	TokenType    string
	Scope        string
	ExpiresAt    time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired возвращает true, если access token истек к моменту now
func (c *CalendarCredential) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// CanRefresh возвращает true, если есть refresh token для обновления
func (c *CalendarCredential) CanRefresh() bool {
	return c.RefreshToken != ""
}
