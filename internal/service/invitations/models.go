package invitations

import (
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// IssueResult результат выпуска приглашения
type IssueResult struct {
	Invitation *domain.Invitation
	Link       string // ссылка для мастера на фронтенд
	AuthURL    string // URL авторизации Google, state = код приглашения
}

// StatusResult состояние подключения календаря мастера
type StatusResult struct {
	Connected       bool
	Expired         bool // access token истек (refresh произойдет при синхронизации)
	HasRefreshToken bool
	ExpiresAt       time.Time
}
