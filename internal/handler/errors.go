// internal/handler/errors.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"issuing-service/internal/domain"
	"issuing-service/internal/logging"

	"go.uber.org/zap"
)

// writeError classifies the failure and renders the stable ErrorResponse
// shape. Unclassified failures get a generic message so internals never
// leak; the correlation id is included so operators can find the detailed
// log entry.
func (h *PaymentHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	log := logging.FromContext(ctx, h.logger)

	c := domain.Classify(err)

	message := err.Error()
	if c.ErrorCode == domain.CodeInternalError {
		log.Error("unexpected error",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		message = "An unexpected error occurred. Please contact support with correlationId: " +
			logging.CorrelationID(ctx)
	} else {
		log.Warn("request failed",
			zap.String("path", r.URL.Path),
			zap.String("error_code", c.ErrorCode),
			zap.Int("status", c.Status),
			zap.Error(err))
	}

	resp := domain.ErrorResponse{
		ErrorCode: c.ErrorCode,
		Message:   message,
		Status:    c.Status,
		Path:      r.URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(c.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", zap.Error(err))
	}
}
