package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	updateBooking "github.com/m04kA/BRB-SchedulingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidBookingID     = "некорректный ID записи"
	msgInvalidStartAt       = "некорректный формат времени начала, ожидается YYYY-MM-DDTHH:MM:SS"
	msgBookingNotFound      = "запись не найдена"
	msgNotUpdatable         = "запись нельзя перенести в текущем статусе"
	msgOutsideBusinessHours = "выбранное время вне графика работы"
	msgBookingConflict      = "выбранное время пересекается с существующей записью"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/schedule - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/schedule - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *updateBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Conflict: booking_id=%d, conflicts_with=%d",
				bookingID, conflict.ConflictingBookingID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error: msgBookingConflict,
				Conflict: ConflictInfo{
					BookingID:  conflict.ConflictingBookingID,
					ClientName: conflict.ClientName,
					StartAt:    conflict.StartAt.String(),
					EndAt:      conflict.EndAt.String(),
				},
			})

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrNotUpdatable):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Not updatable: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotUpdatable)

		case errors.Is(err, updateBooking.ErrOutsideBusinessHours):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Outside business hours: booking_id=%d, start_at=%s",
				bookingID, req.StartAt)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/schedule - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/schedule - Booking rescheduled: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
