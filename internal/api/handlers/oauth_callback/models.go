package oauth_callback

import (
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// CallbackResponse HTTP response model
type CallbackResponse struct {
	Message   string `json:"message"`
	StaffID   int64  `json:"staffId"`
	Provider  string `json:"provider"`
	ExpiresAt string `json:"expiresAt"`
}

// FromCredential конвертирует учетные данные в HTTP response
func FromCredential(cred *domain.CalendarCredential, message string) *CallbackResponse {
	return &CallbackResponse{
		Message:   message,
		StaffID:   cred.StaffID,
		Provider:  cred.Provider,
		ExpiresAt: cred.ExpiresAt.Format(time.RFC3339),
	}
}
