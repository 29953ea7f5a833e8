package sync_all_calendars

import (
	syncAllCalendars "github.com/m04kA/BRB-SchedulingService/internal/usecase/sync_all_calendars"
)

// SyncAllResponse HTTP response model
type SyncAllResponse struct {
	Message        string `json:"message"`
	Synced         int    `json:"synced"`
	Errors         int    `json:"errors"`
	Total          int    `json:"total"`
	StaffProcessed int    `json:"staffProcessed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncAllCalendars.Response, message string) *SyncAllResponse {
	return &SyncAllResponse{
		Message:        message,
		Synced:         resp.Synced,
		Errors:         resp.Errors,
		Total:          resp.Total,
		StaffProcessed: resp.StaffProcessed,
	}
}
