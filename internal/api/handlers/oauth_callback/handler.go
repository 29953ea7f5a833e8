package oauth_callback

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	invitationsService "github.com/m04kA/BRB-SchedulingService/internal/service/invitations"
)

const (
	msgMissingParams      = "требуются параметры code и state"
	msgInvitationNotFound = "приглашение не найдено"
	msgInvitationExpired  = "срок действия приглашения истек"
	msgInvitationUsed     = "приглашение уже использовано"
	msgTokenExchange      = "не удалось обменять код авторизации на токены"
	msgConnected          = "календарь подключен"
)

type Handler struct {
	service     InvitationsService
	frontendURL string
	logger      Logger
}

func NewHandler(service InvitationsService, frontendURL string, logger Logger) *Handler {
	return &Handler{
		service:     service,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Handle GET /api/v1/calendar/oauth/callback?code=...&state=...
// state - код приглашения, передается в OAuth-запрос при выпуске
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authCode := r.URL.Query().Get("code")
	invitationCode := r.URL.Query().Get("state")
	if authCode == "" || invitationCode == "" {
		h.logger.Warn("GET /calendar/oauth/callback - Missing code or state")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	cred, err := h.service.Redeem(r.Context(), invitationCode, authCode)
	if err != nil {
		switch {
		case errors.Is(err, invitationsService.ErrInvitationNotFound):
			h.logger.Warn("GET /calendar/oauth/callback - Invitation not found")
			handlers.RespondNotFound(w, msgInvitationNotFound)

		case errors.Is(err, invitationsService.ErrInvitationExpired):
			h.logger.Warn("GET /calendar/oauth/callback - Invitation expired")
			handlers.RespondError(w, http.StatusGone, msgInvitationExpired)

		case errors.Is(err, invitationsService.ErrInvitationUsed):
			h.logger.Warn("GET /calendar/oauth/callback - Invitation already used")
			handlers.RespondError(w, http.StatusConflict, msgInvitationUsed)

		case errors.Is(err, invitationsService.ErrTokenExchange):
			h.logger.Error("GET /calendar/oauth/callback - Token exchange failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgTokenExchange)

		case errors.Is(err, invitationsService.ErrInvalidInput):
			h.logger.Warn("GET /calendar/oauth/callback - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)

		default:
			h.logger.Error("GET /calendar/oauth/callback - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/oauth/callback - Calendar connected: staff_id=%d", cred.StaffID)

	// Браузер мастера попадает сюда после согласия Google - уводим его на фронтенд
	if h.frontendURL != "" {
		http.Redirect(w, r, h.frontendURL+"/calendar/connected", http.StatusFound)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromCredential(cred, msgConnected))
}
