package get_available_hours

import (
	"context"
	"fmt"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
)

// UseCase получение доступных часов для записи на день
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

// Execute возвращает часы начала слотов на указанную дату.
// Для выходного дня возвращается пустой список и флаг Closed.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	hours, err := uc.hours.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - get hours: %v", ErrInternal, err)
	}

	return &Response{
		Date:   req.Date,
		Closed: domain.IsDayClosed(req.Date, hours),
		Hours:  domain.AvailableHours(req.Date, hours),
	}, nil
}
