package oauth_callback

import (
	"context"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

type InvitationsService interface {
	Redeem(ctx context.Context, invitationCode, authCode string) (*domain.CalendarCredential, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
