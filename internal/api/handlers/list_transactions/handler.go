package list_transactions

import (
	"errors"
	"net/http"

	"github.com/inkline/studio/internal/api/handlers"
	"github.com/inkline/studio/internal/service/transactions"
	"github.com/inkline/studio/internal/service/transactions/models"
)

const msgInvalidPeriod = "invalid period: use from and to as YYYY-MM-DD, from not after to"

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

// Handle GET /api/admin/transactions?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{
		From: handlers.OptionalQuery(r, "from"),
		To:   handlers.OptionalQuery(r, "to"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, transactions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/transactions - Failed to list transactions: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
