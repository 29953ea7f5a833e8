package get_calendar_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	invitationsService "github.com/m04kA/BRB-SchedulingService/internal/service/invitations"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
)

type Handler struct {
	service InvitationsService
	logger  Logger
}

func NewHandler(service InvitationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/calendar-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/calendar-status - Invalid staff id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.Status(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, invitationsService.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/calendar-status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
		default:
			h.logger.Error("GET /staff/{id}/calendar-status - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
