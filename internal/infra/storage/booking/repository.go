package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/BRB-SchedulingService/internal/domain"
	"github.com/m04kA/BRB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись вместе со снимками услуг.
// Если в контексте передана активная транзакция, использует её - создание
// записи с проверкой конфликта должно идти в одной сериализуемой транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"staff_id",
			"client_id",
			"start_at",
			"duration_minutes",
			"status",
			"notes",
		).
		Values(
			booking.StaffID,
			booking.ClientID,
			booking.StartAt,
			booking.DurationMinutes,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.insertServices(ctx, executor, booking.ID, booking.Services); err != nil {
		return nil, err
	}

	return booking, nil
}

// insertServices сохраняет упорядоченные снимки услуг записи
func (r *Repository) insertServices(ctx context.Context, executor DBExecutor, bookingID int64, services []domain.ServiceSnapshot) error {
	if len(services) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("booking_services").
		Columns("booking_id", "position", "service_id", "service_name", "service_price")

	for i, s := range services {
		builder = builder.Values(bookingID, i, s.ServiceID, s.Name, s.Price)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertServices - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает запись по ID вместе со снимками услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"client_id",
		"start_at",
		"duration_minutes",
		"status",
		"notes",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.StaffID,
		&booking.ClientID,
		&booking.StartAt,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	services, err := r.loadServices(ctx, executor, []int64{booking.ID})
	if err != nil {
		return nil, err
	}
	booking.Services = services[booking.ID]

	return &booking, nil
}

// GetByStaffWithFilter получает записи мастера с фильтрацией по периоду и статусу
func (r *Repository) GetByStaffWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"staff_id",
		"client_id",
		"start_at",
		"duration_minutes",
		"status",
		"notes",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"staff_id": filter.StaffID})

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachServices(ctx, executor, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListViewsByStaff получает денормализованные записи мастера в полуоткрытом
// периоде [from, to), упорядоченные по началу. Одним запросом подтягиваются
// имя и телефон клиента и имя мастера; снимки услуг - вторым запросом.
func (r *Repository) ListViewsByStaff(ctx context.Context, staffID int64, from, to types.LocalDateTime) ([]*domain.BookingView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.staff_id",
		"b.client_id",
		"b.start_at",
		"b.duration_minutes",
		"b.status",
		"b.notes",
		"b.created_at",
		"b.updated_at",
		"c.name AS client_name",
		"c.phone AS client_phone",
		"s.name AS staff_name",
	).
		From("bookings b").
		Join("clients c ON c.id = b.client_id").
		Join("staff s ON s.id = b.staff_id").
		Where(squirrel.Eq{"b.staff_id": staffID}).
		Where(squirrel.GtOrEq{"b.start_at": from}).
		Where(squirrel.Lt{"b.start_at": to}).
		OrderBy("b.start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListViewsByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListViewsByStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	views := make([]*domain.BookingView, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		var view domain.BookingView
		var createdAt, updatedAt sql.NullTime
		var clientPhone sql.NullString

		err := rows.Scan(
			&view.ID,
			&view.StaffID,
			&view.ClientID,
			&view.StartAt,
			&view.DurationMinutes,
			&view.Status,
			&view.Notes,
			&createdAt,
			&updatedAt,
			&view.ClientName,
			&clientPhone,
			&view.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListViewsByStaff - scan row: %v", ErrScanRow, err)
		}

		view.CreatedAt = createdAt.Time
		view.UpdatedAt = updatedAt.Time
		if clientPhone.Valid {
			view.ClientPhone = &clientPhone.String
		}

		views = append(views, &view)
		ids = append(ids, view.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListViewsByStaff - rows error: %v", ErrScanRow, err)
	}

	services, err := r.loadServices(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		view.Services = services[view.ID]
	}

	return views, nil
}

// UpdateSchedule переносит запись на новое время и длительность
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, startAt types.LocalDateTime, durationMinutes int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_at", startAt).
		Set("duration_minutes", durationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// scanBookings сканирует результаты запроса в слайс записей
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.StaffID,
			&booking.ClientID,
			&booking.StartAt,
			&booking.DurationMinutes,
			&booking.Status,
			&booking.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

// attachServices подтягивает снимки услуг к списку записей
func (r *Repository) attachServices(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	services, err := r.loadServices(ctx, executor, ids)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		b.Services = services[b.ID]
	}
	return nil
}

// loadServices загружает снимки услуг для набора записей, сохраняя порядок
func (r *Repository) loadServices(ctx context.Context, executor DBExecutor, bookingIDs []int64) (map[int64][]domain.ServiceSnapshot, error) {
	result := make(map[int64][]domain.ServiceSnapshot, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return result, nil
	}

	query, args, err := psqlbuilder.Select(
		"booking_id",
		"service_id",
		"service_name",
		"service_price",
	).
		From("booking_services").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("booking_id ASC, position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID int64
		var snapshot domain.ServiceSnapshot

		if err := rows.Scan(&bookingID, &snapshot.ServiceID, &snapshot.Name, &snapshot.Price); err != nil {
			return nil, fmt.Errorf("%w: loadServices - scan row: %v", ErrScanRow, err)
		}
		result[bookingID] = append(result[bookingID], snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadServices - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}
