package list_appointments

import (
	"errors"
	"net/http"

	"github.com/inkline/studio/internal/api/handlers"
	"github.com/inkline/studio/internal/service/appointments"
	"github.com/inkline/studio/internal/service/appointments/models"
)

const msgInvalidFilter = "invalid filter: use date, from, to as YYYY-MM-DD and a known status"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/appointments?date=&from=&to=&status=&email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{
		Date:   handlers.OptionalQuery(r, "date"),
		From:   handlers.OptionalQuery(r, "from"),
		To:     handlers.OptionalQuery(r, "to"),
		Status: handlers.OptionalQuery(r, "status"),
		Email:  handlers.OptionalQuery(r, "email"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
