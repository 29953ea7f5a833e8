package get_hour_axis

import (
	"context"

	getHourAxis "github.com/m04kA/BRB-SchedulingService/internal/usecase/get_hour_axis"
)

type GetHourAxisUseCase interface {
	Execute(ctx context.Context, req getHourAxis.Request) (*getHourAxis.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
