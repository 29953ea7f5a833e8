package credential

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

// Repository репозиторий OAuth-учетных данных внешнего календаря
// Не более одной строки на пару (staff_id, provider)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория учетных данных
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var columns = []string{
	"staff_id",
	"provider",
	"access_token",
	"refresh_token",
	"token_type",
	"scope",
	"expires_at",
	"created_at",
	"updated_at",
}

// GetByStaff получает учетные данные мастера для указанного провайдера
func (r *Repository) GetByStaff(ctx context.Context, staffID int64, provider string) (*domain.CalendarCredential, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("calendar_credentials").
		Where(squirrel.Eq{"staff_id": staffID, "provider": provider}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - build select query: %v", ErrBuildQuery, err)
	}

	var cred domain.CalendarCredential
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cred.StaffID,
		&cred.Provider,
		&cred.AccessToken,
		&cred.RefreshToken,
		&cred.TokenType,
		&cred.Scope,
		&cred.ExpiresAt,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - scan credential: %v", ErrScanRow, err)
	}

	return &cred, nil
}

// ListStaffIDs возвращает мастеров с сохраненными учетными данными провайдера
func (r *Repository) ListStaffIDs(ctx context.Context, provider string) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("staff_id").
		From("calendar_credentials").
		Where(squirrel.Eq{"provider": provider}).
		OrderBy("staff_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staffIDs := make([]int64, 0)
	for rows.Next() {
		var staffID int64
		if err := rows.Scan(&staffID); err != nil {
			return nil, fmt.Errorf("%w: ListStaffIDs - scan staff_id: %v", ErrScanRow, err)
		}
		staffIDs = append(staffIDs, staffID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaffIDs - rows error: %v", ErrScanRow, err)
	}
	return staffIDs, nil
}

// Upsert создает или обновляет учетные данные по ключу (staff_id, provider)
// Вызывается при завершении OAuth-привязки
func (r *Repository) Upsert(ctx context.Context, cred *domain.CalendarCredential) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_credentials").
		Columns(
			"staff_id",
			"provider",
			"access_token",
			"refresh_token",
			"token_type",
			"scope",
			"expires_at",
		).
		Values(
			cred.StaffID,
			cred.Provider,
			cred.AccessToken,
			cred.RefreshToken,
			cred.TokenType,
			cred.Scope,
			cred.ExpiresAt,
		).
		Suffix(`ON CONFLICT (staff_id, provider) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_type = EXCLUDED.token_type,
			scope = EXCLUDED.scope,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// UpdateTokens обновляет access token и срок его действия после refresh
// Refresh token не трогаем - при отказе обновления учетные данные не удаляются
func (r *Repository) UpdateTokens(ctx context.Context, staffID int64, provider, accessToken string, expiresAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar_credentials").
		Set("access_token", accessToken).
		Set("expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"staff_id": staffID, "provider": provider}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateTokens - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTokens - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTokens - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}
	return nil
}
