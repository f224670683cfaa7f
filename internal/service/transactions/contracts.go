package transactions

import (
	"context"

	"github.com/inkline/studio/internal/domain"
)

// TransactionRepository интерфейс репозитория платежей
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	List(ctx context.Context, filter domain.TransactionsFilter) ([]*domain.Transaction, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
