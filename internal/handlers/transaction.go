package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/tropicaldog17/cryptofolio/internal/errors"
	"github.com/tropicaldog17/cryptofolio/internal/models"
	"github.com/tropicaldog17/cryptofolio/internal/services"
)

type TransactionHandler struct {
	service services.PortfolioService
	logger  *zap.Logger
}

func NewTransactionHandler(service services.PortfolioService, logger *zap.Logger) *TransactionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionHandler{service: service, logger: logger.Named("transactions")}
}

// transactionResponse is a stored transaction plus its per-unit price.
type transactionResponse struct {
	*models.Transaction
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// HandleListTransactions handles GET /api/transactions
// @Summary List transactions
// @Description Get every recorded purchase, most recently created first
// @Tags transactions
// @Produce json
// @Success 200 {array} transactionResponse
// @Router /transactions [get]
func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs := h.service.Transactions()
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, transactionResponse{Transaction: tx, UnitPrice: tx.UnitPrice()})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleCreateTransaction handles POST /api/transactions
// @Summary Record a purchase
// @Description Validate and persist a new buy transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.TransactionInput true "Purchase"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 503 {object} errorResponse "Storage unavailable"
// @Router /transactions [post]
func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in models.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error(), "")
		return
	}

	tx, err := h.service.AddTransaction(r.Context(), in)
	if err != nil {
		var verr *apperrors.ErrValidation
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Error(), verr.Field)
		case errors.Is(err, apperrors.ErrStorageUnavailable):
			h.logger.Error("failed to persist transaction", zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, "Could not save the transaction. Please try again.", "")
		default:
			h.logger.Error("failed to create transaction", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error(), "")
		}
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

// HandleDeleteTransaction handles DELETE /api/transactions/{id}
// @Summary Remove a transaction
// @Description Delete a transaction by ID. Unknown IDs succeed without change.
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 503 {object} errorResponse "Storage unavailable"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) HandleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "Transaction ID is required", "id")
		return
	}

	removed, err := h.service.RemoveTransaction(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to remove transaction", zap.String("id", id), zap.Error(err))
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "Could not remove the transaction. Please try again.", "")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	if removed == nil {
		h.logger.Debug("remove of unknown transaction", zap.String("id", id))
	}

	w.WriteHeader(http.StatusNoContent)
}
