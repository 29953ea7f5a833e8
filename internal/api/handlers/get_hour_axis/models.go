package get_hour_axis

import (
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	getHourAxis "github.com/m04kA/BRB-SchedulingService/internal/usecase/get_hour_axis"
)

// HourAxisResponse HTTP response model
type HourAxisResponse struct {
	Start string `json:"start"`
	Days  int    `json:"days"`
	Hours []int  `json:"hours"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getHourAxis.Response) *HourAxisResponse {
	hours := resp.Hours
	if hours == nil {
		hours = []int{}
	}
	return &HourAxisResponse{
		Start: resp.Start.Format(domain.DateFormat),
		Days:  resp.Days,
		Hours: hours,
	}
}
