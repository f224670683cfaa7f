package get_dashboard

import (
	"net/http"

	"github.com/inkline/studio/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}
