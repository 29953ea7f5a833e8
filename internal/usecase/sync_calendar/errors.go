package sync_calendar

import "errors"

var (
	// ErrNotConnected возвращается, когда у мастера нет сохраненных токенов календаря
	ErrNotConnected = errors.New("sync_calendar: staff has no calendar credential")

	// ErrTokenRefresh возвращается, когда access token истек и обновить его не удалось
	// Синхронизация мастера прерывается целиком, учетные данные не удаляются
	ErrTokenRefresh = errors.New("sync_calendar: failed to refresh access token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sync_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sync_calendar: internal error")
)
