package get_dashboard

import (
	"context"

	"github.com/inkline/studio/internal/service/dashboard"
)

type DashboardService interface {
	Get(ctx context.Context) (*dashboard.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
