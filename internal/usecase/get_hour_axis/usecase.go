package get_hour_axis

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// UseCase построение общей часовой оси для сетки расписания на несколько дней.
// Ось - объединение рабочих часов всех дней диапазона: колонка одна на всю
// сетку, выходные дни на состав оси не влияют.
type UseCase struct {
	hours HoursRepository
	log   Logger
}

// New создает новый экземпляр UseCase
func New(hours HoursRepository, log Logger) *UseCase {
	return &UseCase{
		hours: hours,
		log:   log,
	}
}

// Execute возвращает объединение рабочих часов диапазона [Start, Start+Days)
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.Start.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if req.Days <= 0 || req.Days > MaxDays {
		return nil, fmt.Errorf("%w: days must be in range [1, %d]", ErrInvalidInput, MaxDays)
	}

	hours, err := uc.hours.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - get hours: %v", ErrInternal, err)
	}

	days := make([]time.Time, 0, req.Days)
	for i := 0; i < req.Days; i++ {
		days = append(days, req.Start.AddDate(0, 0, i))
	}

	return &Response{
		Start: req.Start,
		Days:  req.Days,
		Hours: domain.UnionOfHours(days, hours),
	}, nil
}
