// internal/middleware/correlation.go
package middleware

import (
	"net/http"

	"issuing-service/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CorrelationID reads X-Correlation-Id from the request, or generates one,
// echoes it on the response, and binds a logger carrying it to the request
// context. Everything downstream logs through that logger, so every line
// for a request shares the same correlation id without any ambient state.
func CorrelationID(base *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := r.Header.Get(logging.CorrelationIDHeader)
			if correlationID == "" {
				correlationID = uuid.NewString()
			}

			w.Header().Set(logging.CorrelationIDHeader, correlationID)

			logger := base.With(zap.String("correlation_id", correlationID))
			ctx := logging.WithCorrelationID(r.Context(), correlationID)
			ctx = logging.WithLogger(ctx, logger)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
