package sync_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	credentialstore "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/credential"
	eventlinkstore "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/eventlink"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// UseCase синхронизация записей одного мастера с внешним календарем.
// Повторный запуск безопасен: запись с существующей связью пропускается,
// связь (bookingId, staffId) - единственный механизм защиты от дублей.
type UseCase struct {
	credentials  CredentialRepository
	bookings     BookingRepository
	links        LinkRepository
	calendar     CalendarClient
	metrics      Metrics
	location     *time.Location
	horizonDays  int
	calendarID   string
	timeProvider TimeProvider
	log          Logger
}

// New создает новый экземпляр UseCase
func New(
	credentials CredentialRepository,
	bookings BookingRepository,
	links LinkRepository,
	calendar CalendarClient,
	metrics Metrics,
	location *time.Location,
	horizonDays int,
	calendarID string,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultSyncHorizonDays
	}
	if calendarID == "" {
		calendarID = domain.DefaultCalendarID
	}
	return &UseCase{
		credentials:  credentials,
		bookings:     bookings,
		links:        links,
		calendar:     calendar,
		metrics:      metrics,
		location:     location,
		horizonDays:  horizonDays,
		calendarID:   calendarID,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute синхронизирует записи мастера за ближайший горизонт.
// Порядок: учетные данные -> обновление токена при необходимости ->
// выборка записей -> по каждой записи: пропуск/создание события/фиксация ошибки.
// Ошибка одной записи не прерывает обработку остальных.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	cred, err := uc.credentials.GetByStaff(ctx, req.StaffID, domain.ProviderGoogle)
	if err != nil {
		if errors.Is(err, credentialstore.ErrCredentialNotFound) {
			return nil, ErrNotConnected
		}
		return nil, fmt.Errorf("%w: Execute - get credential: %v", ErrInternal, err)
	}

	accessToken, err := uc.ensureFreshToken(ctx, cred)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.location)
	from := types.NewLocalDateTimeFromWallClock(now)
	to := from.AddDays(uc.horizonDays)

	views, err := uc.bookings.ListViewsByStaff(ctx, req.StaffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - list bookings: %v", ErrInternal, err)
	}

	resp := &Response{Total: len(views)}
	for _, view := range views {
		uc.syncBooking(ctx, accessToken, view, resp)
	}

	uc.log.Info(
		"Calendar sync finished: staffID=%d total=%d synced=%d errors=%d skipped=%d",
		req.StaffID, resp.Total, resp.Synced, resp.Errors, resp.Skipped,
	)
	return resp, nil
}

// ensureFreshToken возвращает действующий access token, обновляя его при истечении.
// Новый токен сохраняется до выборки записей: упавший позже прогон
// не теряет результат обновления.
func (uc *UseCase) ensureFreshToken(ctx context.Context, cred *domain.CalendarCredential) (string, error) {
	if !cred.IsExpired(uc.timeProvider.Now()) {
		return cred.AccessToken, nil
	}
	if !cred.CanRefresh() {
		return "", fmt.Errorf("%w: no refresh token stored for staffID=%d", ErrTokenRefresh, cred.StaffID)
	}

	uc.log.Info("Access token expired, refreshing: staffID=%d", cred.StaffID)
	tok, err := uc.calendar.RefreshToken(ctx, cred.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: staffID=%d: %v", ErrTokenRefresh, cred.StaffID, err)
	}

	err = uc.credentials.UpdateTokens(ctx, cred.StaffID, cred.Provider, tok.AccessToken, tok.ExpiresAt)
	if err != nil {
		return "", fmt.Errorf("%w: ensureFreshToken - persist tokens: %v", ErrInternal, err)
	}
	return tok.AccessToken, nil
}

// syncBooking обрабатывает одну запись, результат пишет в счетчики resp
func (uc *UseCase) syncBooking(ctx context.Context, accessToken string, view *domain.BookingView, resp *Response) {
	_, err := uc.links.Get(ctx, view.ID, view.StaffID)
	if err == nil {
		resp.Skipped++
		uc.metrics.IncSyncOutcome("skipped")
		return
	}
	if !errors.Is(err, eventlinkstore.ErrLinkNotFound) {
		uc.log.Error("Failed to check event link: bookingID=%d staffID=%d: %v", view.ID, view.StaffID, err)
		resp.Errors++
		uc.metrics.IncSyncOutcome("error")
		return
	}

	input := buildEventInput(view, uc.location.String())
	result, err := uc.calendar.CreateEvent(ctx, accessToken, uc.calendarID, input)
	syncedAt := uc.timeProvider.Now()
	if err != nil {
		uc.log.Error("Failed to create calendar event: bookingID=%d staffID=%d: %v", view.ID, view.StaffID, err)
		uc.recordFailure(ctx, view, err, syncedAt)
		resp.Errors++
		uc.metrics.IncSyncOutcome("error")
		return
	}

	link := &domain.EventLink{
		BookingID:  view.ID,
		StaffID:    view.StaffID,
		CalendarID: uc.calendarID,
		EventID:    result.EventID,
		Status:     domain.LinkStatusConfirmed,
		SyncedAt:   syncedAt,
	}
	if err := uc.links.Upsert(ctx, link); err != nil {
		uc.log.Error("Failed to persist event link: bookingID=%d staffID=%d eventID=%s: %v",
			view.ID, view.StaffID, result.EventID, err)
		resp.Errors++
		uc.metrics.IncSyncOutcome("error")
		return
	}

	resp.Synced++
	uc.metrics.IncSyncOutcome("synced")
}

// recordFailure фиксирует ошибку создания события в таблице связей.
// EventID остается пустым, статус error, текст ошибки - в last_error.
func (uc *UseCase) recordFailure(ctx context.Context, view *domain.BookingView, cause error, syncedAt time.Time) {
	msg := cause.Error()
	link := &domain.EventLink{
		BookingID:  view.ID,
		StaffID:    view.StaffID,
		CalendarID: uc.calendarID,
		Status:     domain.LinkStatusError,
		LastError:  &msg,
		SyncedAt:   syncedAt,
	}
	if err := uc.links.Upsert(ctx, link); err != nil {
		uc.log.Error("Failed to persist error link: bookingID=%d staffID=%d: %v", view.ID, view.StaffID, err)
	}
}
