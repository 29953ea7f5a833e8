package sync_calendar

import (
	"context"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/internal/integrations/googlecalendar"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// CredentialRepository интерфейс репозитория учетных данных календаря
type CredentialRepository interface {
	GetByStaff(ctx context.Context, staffID int64, provider string) (*domain.CalendarCredential, error)
	UpdateTokens(ctx context.Context, staffID int64, provider, accessToken string, expiresAt time.Time) error
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	ListViewsByStaff(ctx context.Context, staffID int64, from, to types.LocalDateTime) ([]*domain.BookingView, error)
}

// LinkRepository интерфейс репозитория связей записей с внешними событиями
type LinkRepository interface {
	Get(ctx context.Context, bookingID, staffID int64) (*domain.EventLink, error)
	Upsert(ctx context.Context, link *domain.EventLink) error
}

// CalendarClient интерфейс клиента внешнего календаря
type CalendarClient interface {
	RefreshToken(ctx context.Context, refreshToken string) (*googlecalendar.Token, error)
	CreateEvent(ctx context.Context, accessToken, calendarID string, input *googlecalendar.EventInput) (*googlecalendar.EventResult, error)
}

// Metrics интерфейс учета результатов синхронизации
type Metrics interface {
	IncSyncOutcome(outcome string)
}

// NoopMetrics заглушка метрик для конфигурации без prometheus
type NoopMetrics struct{}

// IncSyncOutcome ничего не делает
func (NoopMetrics) IncSyncOutcome(string) {}

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
