package health

import (
	"context"
	"net/http"
	"time"

	"github.com/inkline/studio/internal/api/handlers"
)

const readyTimeout = 2 * time.Second

// Pinger проверяет доступность зависимости
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

// StatusResponse HTTP response model
type StatusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Live GET /healthz
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Ready GET /readyz; 503 пока база недоступна
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /readyz - Database ping failed: %v", err)
		handlers.RespondServiceUnavailable(w, "database unavailable")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ready"})
}
