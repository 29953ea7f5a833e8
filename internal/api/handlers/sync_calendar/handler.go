package sync_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	syncCalendar "github.com/m04kA/BRB-SchedulingService/internal/usecase/sync_calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStaffID     = "некорректный ID мастера"
	msgNotConnected       = "календарь мастера не подключен"
	msgTokenRefreshFailed = "не удалось обновить токен доступа к календарю"
	msgSyncFinished       = "синхронизация завершена"
)

type Handler struct {
	useCase SyncCalendarUseCase
	logger  Logger
}

func NewHandler(useCase SyncCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar/sync
// Возвращает 200 и с частичными ошибками: итог прогона описан счетчиками в теле
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/sync - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), syncCalendar.Request{StaffID: req.StaffID})
	if err != nil {
		switch {
		case errors.Is(err, syncCalendar.ErrNotConnected):
			h.logger.Warn("POST /calendar/sync - Not connected: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgNotConnected)

		case errors.Is(err, syncCalendar.ErrTokenRefresh):
			h.logger.Error("POST /calendar/sync - Token refresh failed: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgTokenRefreshFailed)

		case errors.Is(err, syncCalendar.ErrInvalidInput):
			h.logger.Warn("POST /calendar/sync - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)

		default:
			h.logger.Error("POST /calendar/sync - Failed: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/sync - Finished: staff_id=%d, synced=%d, errors=%d, skipped=%d",
		req.StaffID, result.Synced, result.Errors, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgSyncFinished))
}
