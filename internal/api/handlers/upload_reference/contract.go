package upload_reference

import (
	"context"

	uploadReference "github.com/inkline/studio/internal/usecase/upload_reference"
)

type UploadReferenceUseCase interface {
	Execute(ctx context.Context, req *uploadReference.Request) (*uploadReference.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
