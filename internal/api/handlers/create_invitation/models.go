package create_invitation

import (
	"time"

	invitationsService "github.com/m04kA/BRB-SchedulingService/internal/service/invitations"
)

// CreateInvitationRequest HTTP request model
type CreateInvitationRequest struct {
	StaffEmail string `json:"staffEmail,omitempty"`
}

// InvitationResponse HTTP response model
type InvitationResponse struct {
	Code      string `json:"code"`
	Link      string `json:"link"`
	AuthURL   string `json:"authUrl"`
	ExpiresAt string `json:"expiresAt"`
}

// FromServiceResult конвертирует результат сервиса в HTTP response
func FromServiceResult(result *invitationsService.IssueResult) *InvitationResponse {
	return &InvitationResponse{
		Code:      result.Invitation.Code,
		Link:      result.Link,
		AuthURL:   result.AuthURL,
		ExpiresAt: result.Invitation.ExpiresAt.Format(time.RFC3339),
	}
}
