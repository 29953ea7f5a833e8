package get_calendar_status

import (
	"time"

	invitationsService "github.com/m04kA/BRB-SchedulingService/internal/service/invitations"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	Connected       bool    `json:"connected"`
	Expired         bool    `json:"expired"`
	HasRefreshToken bool    `json:"hasRefreshToken"`
	ExpiresAt       *string `json:"expiresAt,omitempty"`
}

// FromServiceResult конвертирует результат сервиса в HTTP response
func FromServiceResult(result *invitationsService.StatusResult) *StatusResponse {
	resp := &StatusResponse{
		Connected:       result.Connected,
		Expired:         result.Expired,
		HasRefreshToken: result.HasRefreshToken,
	}
	if result.Connected {
		expiresAt := result.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &expiresAt
	}
	return resp
}
