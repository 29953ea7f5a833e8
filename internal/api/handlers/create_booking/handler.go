package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	createBooking "github.com/m04kA/BRB-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStartAt       = "некорректный формат времени начала, ожидается YYYY-MM-DDTHH:MM:SS"
	msgOutsideBusinessHours = "выбранное время вне графика работы"
	msgBookingConflict      = "выбранное время пересекается с существующей записью"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Conflict: staff_id=%d, conflicts_with=%d",
				req.StaffID, conflict.ConflictingBookingID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error: msgBookingConflict,
				Conflict: ConflictInfo{
					BookingID:  conflict.ConflictingBookingID,
					ClientName: conflict.ClientName,
					StartAt:    conflict.StartAt.String(),
					EndAt:      conflict.EndAt.String(),
				},
			})

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: staff_id=%d, start_at=%s",
				req.StaffID, req.StartAt)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: staff_id=%d, error=%v",
				req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, staff_id=%d",
		result.Booking.ID, req.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
