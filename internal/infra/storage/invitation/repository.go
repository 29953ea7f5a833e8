package invitation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий приглашений на привязку календаря
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория приглашений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое приглашение
func (r *Repository) Create(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_invitations").
		Columns(
			"staff_id",
			"staff_email",
			"code",
			"created_at",
			"expires_at",
			"used",
		).
		Values(
			inv.StaffID,
			inv.StaffEmail,
			inv.Code,
			inv.CreatedAt,
			inv.ExpiresAt,
			inv.Used,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&inv.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return inv, nil
}

// GetByCode получает приглашение по одноразовому коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"staff_email",
		"code",
		"created_at",
		"expires_at",
		"used",
		"confirmed_at",
	).
		From("calendar_invitations").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var inv domain.Invitation
	var confirmedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inv.ID,
		&inv.StaffID,
		&inv.StaffEmail,
		&inv.Code,
		&inv.CreatedAt,
		&inv.ExpiresAt,
		&inv.Used,
		&confirmedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrInvitationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan invitation: %v", ErrScanRow, err)
	}

	if confirmedAt.Valid {
		inv.ConfirmedAt = &confirmedAt.Time
	}
	return &inv, nil
}

// MarkUsed помечает приглашение использованным
func (r *Repository) MarkUsed(ctx context.Context, code string, confirmedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar_invitations").
		Set("used", true).
		Set("confirmed_at", confirmedAt).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

// DeleteExpiredUnused удаляет истекшие неиспользованные приглашения
// Возвращает количество удаленных строк
func (r *Repository) DeleteExpiredUnused(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_invitations").
		Where(squirrel.Lt{"expires_at": now}).
		Where(squirrel.Eq{"used": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredUnused - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredUnused - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredUnused - get rows affected: %v", ErrExecQuery, err)
	}
	return deleted, nil
}
