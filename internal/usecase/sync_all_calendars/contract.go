package sync_all_calendars

import (
	"context"

	"github.com/m04kA/BRB-SchedulingService/internal/usecase/sync_calendar"
)

// CredentialRepository интерфейс репозитория учетных данных календаря
type CredentialRepository interface {
	ListStaffIDs(ctx context.Context, provider string) ([]int64, error)
}

// StaffSyncer интерфейс синхронизации одного мастера
type StaffSyncer interface {
	Execute(ctx context.Context, req sync_calendar.Request) (*sync_calendar.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
