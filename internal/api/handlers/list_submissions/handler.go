package list_submissions

import (
	"errors"
	"net/http"

	"github.com/inkline/studio/internal/api/handlers"
	"github.com/inkline/studio/internal/service/submissions"
)

const msgInvalidStatus = "status must be one of: new, read, archived"

type Handler struct {
	service SubmissionService
	logger  Logger
}

func NewHandler(service SubmissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/submissions?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := handlers.OptionalQuery(r, "status")

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, submissions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/submissions - Failed to list submissions: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
