package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	createBooking "github.com/m04kA/BRB-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp   *createBooking.Response
	err    error
	gotReq createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

const validBody = `{
	"staffId": 5,
	"clientId": 100,
	"startAt": "2026-09-07T10:00:00",
	"services": [{"serviceId": 1, "name": "Corte", "price": 250}]
}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{Booking: &domain.Booking{
		ID:              42,
		StaffID:         5,
		ClientID:        100,
		StartAt:         types.NewLocalDateTime(2026, 9, 7, 10, 0, 0),
		DurationMinutes: 60,
		Status:          domain.StatusPending,
		Services:        []domain.ServiceSnapshot{{ServiceID: 1, Name: "Corte", Price: 250}},
	}}}

	rec := doRequest(t, uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-09-07T10:00:00", resp.StartAt)
	assert.Equal(t, "pending", resp.Status)

	// литерал времени дошел до use case без смещения зон
	assert.Equal(t, types.NewLocalDateTime(2026, 9, 7, 10, 0, 0), uc.gotReq.StartAt)
}

func TestHandle_ConflictBody(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.ConflictError{
		ConflictingBookingID: 7,
		ClientName:           "Carlos",
		StartAt:              types.NewLocalDateTime(2026, 9, 7, 10, 0, 0),
		EndAt:                types.NewLocalDateTime(2026, 9, 7, 11, 0, 0),
	}}

	rec := doRequest(t, uc, validBody)
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, int64(7), resp.Conflict.BookingID)
	assert.Equal(t, "Carlos", resp.Conflict.ClientName)
	assert.Equal(t, "2026-09-07T10:00:00", resp.Conflict.StartAt)
	assert.Equal(t, "2026-09-07T11:00:00", resp.Conflict.EndAt)
}

func TestHandle_OutsideBusinessHours(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrOutsideBusinessHours}

	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidStartAt(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"staffId": 5, "clientId": 100, "startAt": "next tuesday", "services": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
