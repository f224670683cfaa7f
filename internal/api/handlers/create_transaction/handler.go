package create_transaction

import (
	"errors"
	"net/http"

	"github.com/inkline/studio/internal/api/handlers"
	"github.com/inkline/studio/internal/service/transactions"
	"github.com/inkline/studio/internal/service/transactions/models"
	"github.com/inkline/studio/internal/validation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTransaction = "invalid transaction: check amount, kind, method and currency"
	msgUnknownAppointment = "appointment not found"
)

type Handler struct {
	service TransactionService
	logger  Logger
}

func NewHandler(service TransactionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/transactions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := validation.Struct(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, transactions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTransaction)

		case errors.Is(err, transactions.ErrUnknownAppointment):
			handlers.RespondNotFound(w, msgUnknownAppointment)

		default:
			h.logger.Error("POST /admin/transactions - Failed to create transaction: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/transactions - Recorded transaction id=%d for appointment id=%d", created.ID, created.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
