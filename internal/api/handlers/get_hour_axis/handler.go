package get_hour_axis

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	getHourAxis "github.com/m04kA/BRB-SchedulingService/internal/usecase/get_hour_axis"
)

const (
	msgInvalidStart = "некорректный формат начальной даты, ожидается YYYY-MM-DD"
	msgInvalidDays  = "некорректное количество дней"
)

type Handler struct {
	useCase GetHourAxisUseCase
	logger  Logger
}

func NewHandler(useCase GetHourAxisUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/hour-axis?start=YYYY-MM-DD&days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(domain.DateFormat, r.URL.Query().Get("start"))
	if err != nil {
		h.logger.Warn("GET /schedule/hour-axis - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /schedule/hour-axis - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), getHourAxis.Request{Start: start, Days: days})
	if err != nil {
		switch {
		case errors.Is(err, getHourAxis.ErrInvalidInput):
			h.logger.Warn("GET /schedule/hour-axis - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
		default:
			h.logger.Error("GET /schedule/hour-axis - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
