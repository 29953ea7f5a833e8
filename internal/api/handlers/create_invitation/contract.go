package create_invitation

import (
	"context"

	invitationsService "github.com/m04kA/BRB-SchedulingService/internal/service/invitations"
)

type InvitationsService interface {
	Issue(ctx context.Context, staffID int64, staffEmail string) (*invitationsService.IssueResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
