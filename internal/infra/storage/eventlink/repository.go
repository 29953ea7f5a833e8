package eventlink

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий связей записей с событиями внешнего календаря
// Пара (booking_id, staff_id) уникальна - ключ идемпотентности синхронизации
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория связей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает связь по ключу идемпотентности
func (r *Repository) Get(ctx context.Context, bookingID, staffID int64) (*domain.EventLink, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"booking_id",
		"staff_id",
		"calendar_id",
		"event_id",
		"status",
		"last_error",
		"synced_at",
	).
		From("calendar_event_links").
		Where(squirrel.Eq{"booking_id": bookingID, "staff_id": staffID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var link domain.EventLink
	var lastError sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&link.BookingID,
		&link.StaffID,
		&link.CalendarID,
		&link.EventID,
		&link.Status,
		&lastError,
		&link.SyncedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan link: %v", ErrScanRow, err)
	}

	if lastError.Valid {
		link.LastError = &lastError.String
	}
	return &link, nil
}

// Upsert создает или перезаписывает связь по ключу (booking_id, staff_id).
// Повторная синхронизация после ошибки перезаписывает error-строку
// подтвержденной связью; last-writer-wins достаточно, так как два воркера
// не трогают один ключ одновременно (партиционирование по staff_id).
func (r *Repository) Upsert(ctx context.Context, link *domain.EventLink) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_event_links").
		Columns(
			"booking_id",
			"staff_id",
			"calendar_id",
			"event_id",
			"status",
			"last_error",
			"synced_at",
		).
		Values(
			link.BookingID,
			link.StaffID,
			link.CalendarID,
			link.EventID,
			link.Status,
			link.LastError,
			link.SyncedAt,
		).
		Suffix(`ON CONFLICT (booking_id, staff_id) DO UPDATE SET
			calendar_id = EXCLUDED.calendar_id,
			event_id = EXCLUDED.event_id,
			status = EXCLUDED.status,
			last_error = EXCLUDED.last_error,
			synced_at = EXCLUDED.synced_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}
