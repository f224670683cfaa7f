package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/pkg/dbmetrics"
	"github.com/inkline/studio/pkg/psqlbuilder"
)

const (
	tableTransactions = "transactions"

	pqForeignKeyViolation = "23503"
)

var transactionColumns = []string{"id", "appointment_id", "amount", "currency", "kind", "method", "created_at"}

// Repository репозиторий платежей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет платёж
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableTransactions).
		Columns("appointment_id", "amount", "currency", "kind", "method").
		Values(t.AppointmentID, t.Amount, t.Currency, string(t.Kind), string(t.Method)).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return nil, fmt.Errorf("%w: Create - appointment %d", ErrUnknownAppointment, t.AppointmentID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// List получает платежи по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.TransactionsFilter) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select(transactionColumns...).From(tableTransactions), filter).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.AppointmentID, &t.Amount, &t.Currency, &t.Kind, &t.Method, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// SumAmount возвращает сумму платежей по фильтру, возвраты вычитаются
func (r *Repository) SumAmount(ctx context.Context, filter domain.TransactionsFilter) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(
		psqlbuilder.Select("COALESCE(SUM(CASE WHEN kind = 'refund' THEN -amount ELSE amount END), 0)").From(tableTransactions),
		filter,
	).ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumAmount - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumAmount - scan sum: %v", ErrScanRow, err)
	}

	return total, nil
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.TransactionsFilter) squirrel.SelectBuilder {
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"created_at": *filter.To})
	}
	if filter.AppointmentID != nil {
		builder = builder.Where(squirrel.Eq{"appointment_id": *filter.AppointmentID})
	}
	return builder
}
