package sync_calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	credentialstore "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/credential"
	eventlinkstore "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/eventlink"
	"github.com/m04kA/BRB-SchedulingService/internal/integrations/googlecalendar"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

var testNow = time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// calls общий журнал вызовов для проверки порядка операций
type calls struct{ names []string }

type fakeCredRepo struct {
	calls *calls
	cred  *domain.CalendarCredential

	updatedToken     string
	updatedExpiresAt time.Time
}

func (r *fakeCredRepo) GetByStaff(_ context.Context, staffID int64, provider string) (*domain.CalendarCredential, error) {
	if r.cred == nil {
		return nil, credentialstore.ErrCredentialNotFound
	}
	return r.cred, nil
}

func (r *fakeCredRepo) UpdateTokens(_ context.Context, staffID int64, provider, accessToken string, expiresAt time.Time) error {
	r.calls.names = append(r.calls.names, "update_tokens")
	r.updatedToken = accessToken
	r.updatedExpiresAt = expiresAt
	return nil
}

type fakeBookingRepo struct {
	calls *calls
	views []*domain.BookingView

	gotFrom types.LocalDateTime
	gotTo   types.LocalDateTime
}

func (r *fakeBookingRepo) ListViewsByStaff(_ context.Context, staffID int64, from, to types.LocalDateTime) ([]*domain.BookingView, error) {
	r.calls.names = append(r.calls.names, "list_bookings")
	r.gotFrom = from
	r.gotTo = to
	return r.views, nil
}

type fakeLinkRepo struct {
	links map[string]*domain.EventLink
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[string]*domain.EventLink)}
}

func linkKey(bookingID, staffID int64) string {
	return fmt.Sprintf("%d:%d", bookingID, staffID)
}

func (r *fakeLinkRepo) Get(_ context.Context, bookingID, staffID int64) (*domain.EventLink, error) {
	link, ok := r.links[linkKey(bookingID, staffID)]
	if !ok {
		return nil, eventlinkstore.ErrLinkNotFound
	}
	return link, nil
}

func (r *fakeLinkRepo) Upsert(_ context.Context, link *domain.EventLink) error {
	r.links[linkKey(link.BookingID, link.StaffID)] = link
	return nil
}

type fakeCalendar struct {
	refreshTok    *googlecalendar.Token
	refreshErr    error
	failBySummary map[string]error

	usedTokens []string
	events     []*googlecalendar.EventInput
}

func (c *fakeCalendar) RefreshToken(_ context.Context, refreshToken string) (*googlecalendar.Token, error) {
	if c.refreshErr != nil {
		return nil, c.refreshErr
	}
	return c.refreshTok, nil
}

func (c *fakeCalendar) CreateEvent(_ context.Context, accessToken, calendarID string, input *googlecalendar.EventInput) (*googlecalendar.EventResult, error) {
	if err, ok := c.failBySummary[input.Summary]; ok {
		return nil, err
	}
	c.usedTokens = append(c.usedTokens, accessToken)
	c.events = append(c.events, input)
	return &googlecalendar.EventResult{
		EventID: fmt.Sprintf("evt-%d", len(c.events)),
		Status:  "confirmed",
	}, nil
}

func validCred() *domain.CalendarCredential {
	return &domain.CalendarCredential{
		StaffID:      5,
		Provider:     domain.ProviderGoogle,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    testNow.Add(time.Hour),
	}
}

func view(bookingID int64, hour int, clientName string, services ...string) *domain.BookingView {
	snapshots := make([]domain.ServiceSnapshot, 0, len(services))
	for i, name := range services {
		snapshots = append(snapshots, domain.ServiceSnapshot{ServiceID: int64(i + 1), Name: name})
	}
	return &domain.BookingView{
		Booking: domain.Booking{
			ID:              bookingID,
			StaffID:         5,
			ClientID:        100,
			StartAt:         types.NewLocalDateTime(2026, 9, 8, hour, 0, 0),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
			Services:        snapshots,
		},
		ClientName: clientName,
		StaffName:  "Luis",
	}
}

func newTestUseCase(creds *fakeCredRepo, bookings *fakeBookingRepo, links *fakeLinkRepo, cal *fakeCalendar) *UseCase {
	return New(creds, bookings, links, cal, NoopMetrics{}, time.UTC, 7, "primary", &fixedTime{now: testNow}, nopLogger{})
}

func TestExecute_NotConnected(t *testing.T) {
	log := &calls{}
	uc := newTestUseCase(
		&fakeCredRepo{calls: log},
		&fakeBookingRepo{calls: log},
		newFakeLinkRepo(),
		&fakeCalendar{},
	)

	_, err := uc.Execute(context.Background(), Request{StaffID: 5})
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestExecute_HappyPath(t *testing.T) {
	log := &calls{}
	phone := "+52 555 123"
	v := view(1, 10, "Ana", "Corte", "Barba")
	v.ClientPhone = &phone

	creds := &fakeCredRepo{calls: log, cred: validCred()}
	bookings := &fakeBookingRepo{calls: log, views: []*domain.BookingView{v, view(2, 12, "Pedro", "Corte")}}
	links := newFakeLinkRepo()
	cal := &fakeCalendar{}

	uc := newTestUseCase(creds, bookings, links, cal)
	resp, err := uc.Execute(context.Background(), Request{StaffID: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Synced)
	assert.Equal(t, 0, resp.Errors)
	assert.Equal(t, 0, resp.Skipped)
	assert.Equal(t, 2, resp.Total)

	// горизонт выборки: [сейчас, сейчас+7 дней)
	assert.Equal(t, types.NewLocalDateTime(2026, 9, 7, 8, 0, 0), bookings.gotFrom)
	assert.Equal(t, types.NewLocalDateTime(2026, 9, 14, 8, 0, 0), bookings.gotTo)

	require.Len(t, cal.events, 2)
	first := cal.events[0]
	assert.Equal(t, "Ana - Corte, Barba", first.Summary)
	assert.Equal(t, "Client: Ana\nPhone: +52 555 123\nServices: Corte, Barba", first.Description)
	assert.Equal(t, "2026-09-08T10:00:00", first.StartLocal)
	assert.Equal(t, "2026-09-08T11:00:00", first.EndLocal)
	assert.Equal(t, "UTC", first.TimeZone)

	link, err := links.Get(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusConfirmed, link.Status)
	assert.Equal(t, "evt-1", link.EventID)
}

func TestExecute_SecondRunSkips(t *testing.T) {
	log := &calls{}
	creds := &fakeCredRepo{calls: log, cred: validCred()}
	bookings := &fakeBookingRepo{calls: log, views: []*domain.BookingView{view(1, 10, "Ana", "Corte")}}
	links := newFakeLinkRepo()
	cal := &fakeCalendar{}

	uc := newTestUseCase(creds, bookings, links, cal)

	first, err := uc.Execute(context.Background(), Request{StaffID: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Synced)

	second, err := uc.Execute(context.Background(), Request{StaffID: 5})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Synced)
	assert.Equal(t, 1, second.Skipped)
	assert.Equal(t, 1, second.Total)

	// внешнее событие создано ровно один раз
	assert.Len(t, cal.events, 1)
}

func TestExecute_PartialFailure(t *testing.T) {
	log := &calls{}
	creds := &fakeCredRepo{calls: log, cred: validCred()}
	bookings := &fakeBookingRepo{calls: log, views: []*domain.BookingView{
		view(1, 10, "Ana", "Corte"),
		view(2, 12, "Pedro", "Corte"),
	}}
	links := newFakeLinkRepo()
	cal := &fakeCalendar{failBySummary: map[string]error{
		"Ana - Corte": errors.New("google api: backendError"),
	}}

	uc := newTestUseCase(creds, bookings, links, cal)
	resp, err := uc.Execute(context.Background(), Request{StaffID: 5})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Synced)
	assert.Equal(t, 1, resp.Errors)
	assert.Equal(t, 2, resp.Total)

	failed, err := links.Get(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusError, failed.Status)
	assert.Empty(t, failed.EventID)
	require.NotNil(t, failed.LastError)
	assert.Contains(t, *failed.LastError, "backendError")

	ok, err := links.Get(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.LinkStatusConfirmed, ok.Status)
}

func TestExecute_RefreshesExpiredToken(t *testing.T) {
	log := &calls{}
	cred := validCred()
	cred.ExpiresAt = testNow.Add(-time.Minute)

	creds := &fakeCredRepo{calls: log, cred: cred}
	bookings := &fakeBookingRepo{calls: log, views: []*domain.BookingView{view(1, 10, "Ana", "Corte")}}
	cal := &fakeCalendar{refreshTok: &googlecalendar.Token{
		AccessToken: "access-2",
		ExpiresAt:   testNow.Add(time.Hour),
	}}

	uc := newTestUseCase(creds, bookings, newFakeLinkRepo(), cal)
	resp, err := uc.Execute(context.Background(), Request{StaffID: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Synced)

	// новый токен сохранен до выборки записей и использован при создании события
	require.Equal(t, []string{"update_tokens", "list_bookings"}, log.names)
	assert.Equal(t, "access-2", creds.updatedToken)
	require.Len(t, cal.usedTokens, 1)
	assert.Equal(t, "access-2", cal.usedTokens[0])
}

func TestExecute_RefreshFailureAborts(t *testing.T) {
	log := &calls{}
	cred := validCred()
	cred.ExpiresAt = testNow.Add(-time.Minute)

	creds := &fakeCredRepo{calls: log, cred: cred}
	bookings := &fakeBookingRepo{calls: log}
	cal := &fakeCalendar{refreshErr: errors.New("invalid_grant")}

	uc := newTestUseCase(creds, bookings, newFakeLinkRepo(), cal)
	_, err := uc.Execute(context.Background(), Request{StaffID: 5})
	assert.ErrorIs(t, err, ErrTokenRefresh)

	// до выборки записей дело не дошло
	assert.NotContains(t, log.names, "list_bookings")
}

func TestExecute_ExpiredWithoutRefreshToken(t *testing.T) {
	log := &calls{}
	cred := validCred()
	cred.ExpiresAt = testNow.Add(-time.Minute)
	cred.RefreshToken = ""

	uc := newTestUseCase(
		&fakeCredRepo{calls: log, cred: cred},
		&fakeBookingRepo{calls: log},
		newFakeLinkRepo(),
		&fakeCalendar{},
	)

	_, err := uc.Execute(context.Background(), Request{StaffID: 5})
	assert.ErrorIs(t, err, ErrTokenRefresh)
}

func TestExecute_InvalidStaffID(t *testing.T) {
	log := &calls{}
	uc := newTestUseCase(&fakeCredRepo{calls: log}, &fakeBookingRepo{calls: log}, newFakeLinkRepo(), &fakeCalendar{})

	_, err := uc.Execute(context.Background(), Request{StaffID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
