package domain

import "time"

// Invitation приглашение мастеру привязать внешний календарь.
// Код одноразовый: после использования или истечения срока не принимается.
type Invitation struct {
	ID          int64
	StaffID     int64
	StaffEmail  string
	Code        string // высокоэнтропийный одноразовый токен
	CreatedAt   time.Time
	ExpiresAt   time.Time // CreatedAt + TTL (48 часов)
	Used        bool
	ConfirmedAt *time.Time
}

// IsExpired возвращает true, если срок приглашения истек
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsRedeemable возвращает true, если код еще можно использовать
func (i *Invitation) IsRedeemable(now time.Time) bool {
	return !i.Used && !i.IsExpired(now)
}
