package update_submission_status

import (
	"context"

	"github.com/inkline/studio/internal/service/submissions/models"
)

type SubmissionService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
