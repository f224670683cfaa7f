package dashboard

import (
	"context"
	"time"

	"github.com/inkline/studio/internal/domain"
)

// AppointmentCounter считает записи по фильтру
type AppointmentCounter interface {
	Count(ctx context.Context, filter domain.AppointmentsFilter) (int, error)
}

// SubmissionCounter считает обращения по статусу
type SubmissionCounter interface {
	CountByStatus(ctx context.Context, status domain.SubmissionStatus) (int, error)
}

// RevenueCalculator суммирует платежи за период
type RevenueCalculator interface {
	SumAmount(ctx context.Context, filter domain.TransactionsFilter) (float64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
