package get_available_hours

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	getAvailableHours "github.com/m04kA/BRB-SchedulingService/internal/usecase/get_available_hours"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableHoursUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/available-hours?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /schedule/available-hours - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), getAvailableHours.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableHours.ErrInvalidInput):
			h.logger.Warn("GET /schedule/available-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /schedule/available-hours - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
