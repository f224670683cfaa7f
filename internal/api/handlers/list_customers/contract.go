package list_customers

import (
	"context"

	"github.com/inkline/studio/internal/service/appointments/models"
)

type CustomerService interface {
	ListCustomers(ctx context.Context) (*models.CustomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
