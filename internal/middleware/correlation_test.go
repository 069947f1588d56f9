package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"issuing-service/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCorrelationIDEchoesHeader(t *testing.T) {
	var seenID string
	var seenLogger *zap.Logger

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = logging.CorrelationID(r.Context())
		seenLogger = logging.FromContext(r.Context(), nil)
	})

	h := CorrelationID(zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/payments/abc", nil)
	req.Header.Set(logging.CorrelationIDHeader, "corr-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "corr-42", rec.Header().Get(logging.CorrelationIDHeader))
	assert.Equal(t, "corr-42", seenID)
	require.NotNil(t, seenLogger)
}

func TestCorrelationIDGeneratesWhenMissing(t *testing.T) {
	var seenID string

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = logging.CorrelationID(r.Context())
	})

	h := CorrelationID(zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/payments/abc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	generated := rec.Header().Get(logging.CorrelationIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, seenID)
}

func TestCorrelationIDsDifferAcrossRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := CorrelationID(zap.NewNop())(next)

	ids := map[string]bool{}
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		ids[rec.Header().Get(logging.CorrelationIDHeader)] = true
	}
	assert.Len(t, ids, 10)
}
