package sync_all_calendars

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sync_all_calendars: internal error")
)
