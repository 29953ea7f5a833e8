package sync_calendar

import (
	syncCalendar "github.com/m04kA/BRB-SchedulingService/internal/usecase/sync_calendar"
)

// SyncRequest HTTP request model
type SyncRequest struct {
	StaffID int64 `json:"staffId"`
}

// SyncResponse HTTP response model
type SyncResponse struct {
	Message string `json:"message"`
	Synced  int    `json:"synced"`
	Errors  int    `json:"errors"`
	Skipped int    `json:"skipped"`
	Total   int    `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncCalendar.Response, message string) *SyncResponse {
	return &SyncResponse{
		Message: message,
		Synced:  resp.Synced,
		Errors:  resp.Errors,
		Skipped: resp.Skipped,
		Total:   resp.Total,
	}
}
