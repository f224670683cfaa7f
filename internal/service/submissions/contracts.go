package submissions

import (
	"context"

	"github.com/inkline/studio/internal/domain"
)

// SubmissionRepository интерфейс репозитория обращений
type SubmissionRepository interface {
	List(ctx context.Context, status *domain.SubmissionStatus) ([]*domain.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
