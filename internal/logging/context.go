// internal/logging/context.go
package logging

import (
	"context"

	"go.uber.org/zap"
)

// CorrelationIDHeader is the HTTP header carrying the correlation id.
const CorrelationIDHeader = "X-Correlation-Id"

type ctxKey int

const (
	loggerKey ctxKey = iota
	correlationIDKey
)

// WithLogger binds a request-scoped logger to the context.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request-scoped logger, or the fallback when the
// context carries none. The request-scoped logger already includes the
// correlation id, so every log line written through it is traceable.
func FromContext(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	if fallback != nil {
		return fallback
	}
	return zap.NewNop()
}

// WithCorrelationID stores the correlation id on the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the correlation id bound to the context, if any.
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}
