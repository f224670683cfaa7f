package list_submissions

import (
	"context"

	"github.com/inkline/studio/internal/service/submissions/models"
)

type SubmissionService interface {
	List(ctx context.Context, status *string) (*models.SubmissionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
