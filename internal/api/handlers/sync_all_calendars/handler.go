package sync_all_calendars

import (
	"net/http"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
)

const (
	msgSyncFinished = "синхронизация всех мастеров завершена"
)

type Handler struct {
	useCase SyncAllCalendarsUseCase
	logger  Logger
}

func NewHandler(useCase SyncAllCalendarsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar/sync-all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /calendar/sync-all - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /calendar/sync-all - Finished: staff_processed=%d, synced=%d, errors=%d",
		result.StaffProcessed, result.Synced, result.Errors)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgSyncFinished))
}
