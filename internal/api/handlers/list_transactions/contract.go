package list_transactions

import (
	"context"

	"github.com/inkline/studio/internal/service/transactions/models"
)

type TransactionService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
