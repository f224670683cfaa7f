package upload_reference

import (
	"errors"
	"io"
	"net/http"

	"github.com/inkline/studio/internal/api/handlers"
	uploadReference "github.com/inkline/studio/internal/usecase/upload_reference"
)

const (
	formField = "file"

	// multipartOverhead запас на заголовки multipart поверх размера файла
	multipartOverhead = 1 << 20
	// memoryLimit часть формы, которая держится в памяти; остальное уходит во временные файлы
	memoryLimit = 4 << 20

	msgMissingFile     = "multipart field \"file\" is required"
	msgEmptyFile       = "file is empty"
	msgTooLarge        = "file is too large"
	msgUnsupportedType = "only JPEG, PNG, WebP and GIF images are accepted"
	msgUnavailable     = "uploads are temporarily unavailable"
)

type Handler struct {
	useCase  UploadReferenceUseCase
	maxBytes int64
	logger   Logger
}

func NewHandler(useCase UploadReferenceUseCase, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle POST /api/uploads (multipart/form-data, поле file)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

	if err := r.ParseMultipartForm(memoryLimit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Warn("POST /uploads - Body too large: limit=%d", maxErr.Limit)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		h.logger.Warn("POST /uploads - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(formField)
	if err != nil {
		h.logger.Warn("POST /uploads - Missing file field: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	// Читаем на байт больше лимита, чтобы отличить "ровно лимит" от "больше"
	content, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		h.logger.Error("POST /uploads - Failed to read file: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &uploadReference.Request{
		Content:      content,
		OriginalName: header.Filename,
	})
	if err != nil {
		switch {
		case errors.Is(err, uploadReference.ErrEmptyFile):
			handlers.RespondBadRequest(w, msgEmptyFile)

		case errors.Is(err, uploadReference.ErrTooLarge):
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgTooLarge)

		case errors.Is(err, uploadReference.ErrUnsupportedType):
			handlers.RespondError(w, http.StatusUnsupportedMediaType, msgUnsupportedType)

		case errors.Is(err, uploadReference.ErrUnavailable):
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("POST /uploads - Failed to upload: name=%q, error=%v", header.Filename, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /uploads - Uploaded: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
