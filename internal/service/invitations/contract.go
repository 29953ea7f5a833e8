package invitations

import (
	"context"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/internal/integrations/googlecalendar"
)

// InvitationRepository интерфейс репозитория приглашений
type InvitationRepository interface {
	Create(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error)
	GetByCode(ctx context.Context, code string) (*domain.Invitation, error)
	MarkUsed(ctx context.Context, code string, confirmedAt time.Time) error
	DeleteExpiredUnused(ctx context.Context, now time.Time) (int64, error)
}

// CredentialRepository интерфейс репозитория учетных данных календаря
type CredentialRepository interface {
	GetByStaff(ctx context.Context, staffID int64, provider string) (*domain.CalendarCredential, error)
	Upsert(ctx context.Context, cred *domain.CalendarCredential) error
}

// CalendarClient интерфейс OAuth-клиента внешнего календаря
type CalendarClient interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*googlecalendar.Token, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
