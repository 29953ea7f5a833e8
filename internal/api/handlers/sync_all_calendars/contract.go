package sync_all_calendars

import (
	"context"

	syncAllCalendars "github.com/m04kA/BRB-SchedulingService/internal/usecase/sync_all_calendars"
)

type SyncAllCalendarsUseCase interface {
	Execute(ctx context.Context) (*syncAllCalendars.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
