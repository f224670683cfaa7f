package create_transaction

import (
	"context"

	"github.com/inkline/studio/internal/service/transactions/models"
)

type TransactionService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
