package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/pkg/dbmetrics"
	"github.com/inkline/studio/pkg/psqlbuilder"
)

const (
	tableAppointments = "appointments"
	tableTransactions = "transactions"

	pqUniqueViolation = "23505"
)

var appointmentColumns = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"service_type",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"status",
	"placement",
	"size",
	"description",
	"reference_image_url",
	"deposit_amount",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на сеанс
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте есть активная транзакция, использует её.
// Нарушение частичного уникального индекса (дата, время) для активных записей возвращается как ErrSlotTaken
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableAppointments).
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"service_type",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"status",
			"placement",
			"size",
			"description",
			"reference_image_url",
			"deposit_amount",
		).
		Values(
			a.CustomerName,
			a.CustomerEmail,
			a.CustomerPhone,
			a.ServiceType,
			a.Date.Format(domain.DateFormat),
			a.StartTime,
			a.DurationMinutes,
			a.Status,
			a.Placement,
			a.Size,
			a.Description,
			a.ReferenceImageURL,
			a.DepositAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Create - %s %s", ErrSlotTaken, a.Date.Format(domain.DateFormat), a.StartTime)
		}
		// %w сохраняет pq.Error для retry serializable транзакции
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает запись по ID.
// Внутри транзакции строка блокируется (FOR UPDATE) для последующей смены статуса
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return a, nil
}

// List получает записи по фильтру
//
// Примеры использования:
//
//  1. Занятые слоты на дату (для расчёта доступности):
//     filter := domain.AppointmentsFilter{StartDate: &day, EndDate: &day, Statuses: domain.OccupyingStatuses}
//
//  2. Все записи клиента:
//     filter := domain.AppointmentsFilter{Email: &email}
//
// Внутри транзакции выборка за один день блокирует строки (FOR UPDATE)
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := applyFilter(psqlbuilder.Select(appointmentColumns...).From(tableAppointments), filter)

	// Для конкретной даты сортируем по времени начала
	if filter.IsSingleDay() {
		builder = builder.OrderBy("start_time ASC")
	} else {
		builder = builder.OrderBy("appointment_date DESC", "start_time DESC")
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	if dbmetrics.IsInTransaction(ctx) && filter.IsSingleDay() {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

// Count считает записи по фильтру (лимит игнорируется)
func (r *Repository) Count(ctx context.Context, filter domain.AppointmentsFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(tableAppointments), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableAppointments).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: UpdateStatus - appointment %d", ErrSlotTaken, id)
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// ListCustomers агрегирует клиентов по email.
// Сумма оплат учитывает возвраты со знаком минус
func (r *Repository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	paid := psqlbuilder.Select(
		"appointment_id",
		"SUM(CASE WHEN kind = 'refund' THEN -amount ELSE amount END) AS total",
	).
		From(tableTransactions).
		GroupBy("appointment_id")

	paidSQL, paidArgs, err := paid.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCustomers - build subquery: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Select(
		"a.customer_email",
		"MAX(a.customer_name)",
		"MAX(a.customer_phone)",
		"COUNT(a.id)",
		"MAX(a.appointment_date)",
		"COALESCE(SUM(p.total), 0)",
	).
		From(tableAppointments+" a").
		LeftJoin("("+paidSQL+") p ON p.appointment_id = a.id", paidArgs...).
		GroupBy("a.customer_email").
		OrderBy("MAX(a.appointment_date) DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCustomers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCustomers - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.Email,
			&c.Name,
			&c.Phone,
			&c.AppointmentsCount,
			&c.LastAppointment,
			&c.TotalSpent,
		); err != nil {
			return nil, fmt.Errorf("%w: ListCustomers - scan row: %v", ErrScanRow, err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCustomers - rows error: %w", ErrScanRow, err)
	}

	return customers, nil
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.AppointmentsFilter) squirrel.SelectBuilder {
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"appointment_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"appointment_date": filter.EndDate.Format(domain.DateFormat)})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		builder = builder.Where(squirrel.Eq{"status": statuses})
	}
	if filter.Email != nil {
		builder = builder.Where(squirrel.Eq{"customer_email": *filter.Email})
	}
	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.CustomerName,
		&a.CustomerEmail,
		&a.CustomerPhone,
		&a.ServiceType,
		&a.Date,
		&a.StartTime,
		&a.DurationMinutes,
		&a.Status,
		&a.Placement,
		&a.Size,
		&a.Description,
		&a.ReferenceImageURL,
		&a.DepositAmount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
