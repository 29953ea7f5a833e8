package googlecalendar

import "errors"

var (
	// ErrTokenExchange возвращается при ошибке обмена authorization code на токены
	ErrTokenExchange = errors.New("googlecalendar client: failed to exchange authorization code")

	// ErrTokenRefresh возвращается при ошибке обновления access token
	ErrTokenRefresh = errors.New("googlecalendar client: failed to refresh access token")

	// ErrEventCreate возвращается при ошибке создания события в календаре
	ErrEventCreate = errors.New("googlecalendar client: failed to create event")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")
)
