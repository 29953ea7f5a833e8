package get_calendar_status

import (
	"context"

	invitationsService "github.com/m04kA/BRB-SchedulingService/internal/service/invitations"
)

type InvitationsService interface {
	Status(ctx context.Context, staffID int64) (*invitationsService.StatusResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
