// internal/handler/payment_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"issuing-service/internal/domain"
	"issuing-service/internal/logging"
	"issuing-service/internal/repository"
	"issuing-service/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentUC *usecase.PaymentUsecase
	logger    *zap.Logger
}

func NewPaymentHandler(paymentUC *usecase.PaymentUsecase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		logger:    logger,
	}
}

// ProcessPayment handles POST /payments. Shape validation runs here; a
// request that fails it never reaches the workflow.
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx, h.logger)

	var req domain.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode payment request", zap.Error(err))
		h.writeError(w, r, domain.NewValidationError("invalid request body"))
		return
	}

	if err := req.Validate(); err != nil {
		log.Warn("payment request validation failed",
			zap.String("merchant_id", req.MerchantID),
			zap.Error(err))
		h.writeError(w, r, err)
		return
	}

	tx, err := h.paymentUC.Process(ctx, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.NewPaymentResponse(tx))
}

// GetPayment handles GET /payments/{transactionId}.
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	transactionID := strings.TrimSpace(chi.URLParam(r, "transactionId"))
	if transactionID == "" {
		h.writeError(w, r, domain.NewValidationError("transactionId is required"))
		return
	}

	tx, err := h.paymentUC.GetByID(ctx, transactionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.NewPaymentResponse(tx))
}

// ListPayments handles GET /payments with optional merchantId and status
// query filters.
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := repository.ListFilter{
		MerchantID: r.URL.Query().Get("merchantId"),
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status, err := domain.ParseStatus(s)
		if err != nil {
			h.writeError(w, r, domain.NewValidationError("status must be one of PENDING, APPROVED, DECLINED"))
			return
		}
		filter.Status = status
	}

	txs, err := h.paymentUC.List(ctx, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}

	h.writeJSON(w, http.StatusOK, txs)
}

func (h *PaymentHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
