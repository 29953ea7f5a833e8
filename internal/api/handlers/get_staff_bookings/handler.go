package get_staff_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-SchedulingService/internal/api/handlers"
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	bookingsService "github.com/m04kA/BRB-SchedulingService/internal/service/bookings"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgInvalidPeriod  = "некорректный формат периода, ожидается YYYY-MM-DDTHH:MM:SS"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/bookings?from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/bookings - Invalid staff id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	filter := domain.StaffBookingsFilter{StaffID: staffID}
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := types.ParseLocalDateTime(raw)
		if err != nil {
			h.logger.Warn("GET /staff/{id}/bookings - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		filter.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := types.ParseLocalDateTime(raw)
		if err != nil {
			h.logger.Warn("GET /staff/{id}/bookings - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		filter.To = &to
	}
	if r.URL.Query().Get("includeInactive") == "true" {
		filter.IncludeInactive = true
	}

	list, err := h.service.ListByStaff(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
		default:
			h.logger.Error("GET /staff/{id}/bookings - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(staffID, list))
}
