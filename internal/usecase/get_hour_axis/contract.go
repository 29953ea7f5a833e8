package get_hour_axis

import (
	"context"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// HoursRepository интерфейс репозитория графика работы
type HoursRepository interface {
	GetAll(ctx context.Context) ([]domain.BusinessHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
