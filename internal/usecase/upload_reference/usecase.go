package upload_reference

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/internal/integrations/mediastore"
)

// UseCase use case для загрузки референса татуировки
type UseCase struct {
	uploadRepo UploadRepository
	media      MediaStore
	maxBytes   int64
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(uploadRepo UploadRepository, media MediaStore, maxBytes int64, logger Logger) *UseCase {
	return &UseCase{
		uploadRepo: uploadRepo,
		media:      media,
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

// Execute проверяет файл, загружает его в хранилище и сохраняет метаданные
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Размер файла
	if req == nil || len(req.Content) == 0 {
		return nil, ErrEmptyFile
	}
	size := int64(len(req.Content))
	if uc.maxBytes > 0 && size > uc.maxBytes {
		uc.logger.Warn("UploadReference: file %q is %d bytes, limit %d", req.OriginalName, size, uc.maxBytes)
		return nil, ErrTooLarge
	}

	// 2. Тип определяем по содержимому, а не по имени файла
	contentType := http.DetectContentType(req.Content)
	if !domain.IsAllowedImageType(contentType) {
		uc.logger.Warn("UploadReference: file %q has unsupported type %s", req.OriginalName, contentType)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	id := uuid.New()

	uc.logger.Info("UploadReference: id=%s, type=%s, size=%d", id, contentType, size)

	// 3. Загружаем в хранилище
	object, err := uc.media.Upload(ctx, id.String(), bytes.NewReader(req.Content))
	if err != nil {
		if errors.Is(err, mediastore.ErrDisabled) {
			uc.logger.Warn("UploadReference: media store is not configured")
			return nil, ErrUnavailable
		}
		uc.logger.Error("UploadReference: failed to upload id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to upload: %v", ErrInternal, err)
	}

	// 4. Сохраняем метаданные
	upload, err := uc.uploadRepo.Create(ctx, &domain.Upload{
		ID:           id,
		PublicID:     object.PublicID,
		URL:          object.URL,
		ContentType:  contentType,
		SizeBytes:    size,
		OriginalName: cleanName(req.OriginalName),
	})
	if err != nil {
		uc.logger.Error("UploadReference: failed to save upload id=%s: %v", id, err)
		// Без записи в БД на файл никто не сошлётся
		if delErr := uc.media.Delete(ctx, object.PublicID); delErr != nil {
			uc.logger.Error("UploadReference: orphaned media public_id=%s: %v", object.PublicID, delErr)
		}
		return nil, fmt.Errorf("%w: failed to save upload: %v", ErrInternal, err)
	}

	uc.logger.Info("UploadReference: stored id=%s at %s", upload.ID, upload.URL)

	return &Response{
		ID:  upload.ID,
		URL: upload.URL,
	}, nil
}

// cleanName оставляет только имя файла без пути
func cleanName(name string) string {
	if name == "" {
		return ""
	}
	base := filepath.Base(filepath.ToSlash(name))
	if base == "." || base == "/" {
		return ""
	}
	return base
}
