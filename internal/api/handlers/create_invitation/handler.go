package create_invitation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/BRB-SchedulingService/internal/api/middleware"
	invitationsService "github.com/m04kA/BRB-SchedulingService/internal/service/invitations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStaffID     = "некорректный ID мастера"
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

// Handle POST /api/v1/staff/{staffId}/calendar-invitations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/calendar-invitations - Invalid staff id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	// тело опционально: приглашение можно выпустить и без email
	var req CreateInvitationRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /staff/{id}/calendar-invitations - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.service.Issue(r.Context(), staffID, req.StaffEmail)
	if err != nil {
		switch {
		case errors.Is(err, invitationsService.ErrInvalidInput):
			h.logger.Warn("POST /staff/{id}/calendar-invitations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
		default:
			h.logger.Error("POST /staff/{id}/calendar-invitations - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	issuerID, _ := middleware.UserIDFromContext(r.Context())
	h.logger.Info("POST /staff/{id}/calendar-invitations - Invitation issued: staff_id=%d, issued_by=%d", staffID, issuerID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResult(result))
}
