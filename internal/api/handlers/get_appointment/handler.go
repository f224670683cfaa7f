package get_appointment

import (
	"errors"
	"net/http"

	"github.com/inkline/studio/internal/api/handlers"
	"github.com/inkline/studio/internal/service/appointments"
)

const (
	msgInvalidID = "invalid appointment id"
	msgNotFound  = "appointment not found"
)

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

// Handle GET /api/admin/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathInt64(r, "id")
	if !ok {
		h.logger.Warn("GET /admin/appointments/{id} - Invalid appointment ID")
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	appointment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /admin/appointments/{id} - Appointment not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/appointments/{id} - Failed to get appointment: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, appointment)
}
