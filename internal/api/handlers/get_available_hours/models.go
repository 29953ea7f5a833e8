package get_available_hours

import (
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	getAvailableHours "github.com/m04kA/BRB-SchedulingService/internal/usecase/get_available_hours"
)

// AvailableHoursResponse HTTP response model
type AvailableHoursResponse struct {
	Date   string `json:"date"`
	Closed bool   `json:"closed"`
	Hours  []int  `json:"hours"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableHours.Response) *AvailableHoursResponse {
	hours := resp.Hours
	if hours == nil {
		hours = []int{}
	}
	return &AvailableHoursResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Closed: resp.Closed,
		Hours:  hours,
	}
}
