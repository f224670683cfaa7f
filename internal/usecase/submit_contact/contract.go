package submit_contact

import (
	"context"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/internal/integrations/mailer"
)

// SubmissionRepository интерфейс репозитория обращений
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error)
}

// Notifier отправляет студии уведомление об обращении
type Notifier interface {
	NotifyContact(ctx context.Context, notice mailer.ContactNotice) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
