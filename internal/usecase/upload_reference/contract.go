package upload_reference

import (
	"context"
	"io"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/internal/integrations/mediastore"
)

// UploadRepository интерфейс репозитория загрузок
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error)
}

// MediaStore интерфейс хранилища изображений
type MediaStore interface {
	Upload(ctx context.Context, publicID string, file io.Reader) (*mediastore.Object, error)
	Delete(ctx context.Context, publicID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
