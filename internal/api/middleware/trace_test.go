package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskio-api/internal/api/shared"
	"github.com/phrazzld/taskio-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	base, buf := logger.NewTestLogger(t)

	var seenTraceID string
	handler := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))

	require.NotEmpty(t, seenTraceID)
	assert.Equal(t, seenTraceID, rec.Header().Get(TraceHeader))

	entry := buf.FindEntry(t, "inside handler")
	require.NotNil(t, entry)
	assert.Equal(t, seenTraceID, entry["trace_id"], "handler logger carries the trace ID")

	started := buf.FindEntry(t, "request started")
	require.NotNil(t, started)
	assert.Equal(t, "/api/v1/tasks", started["path"])
}

func TestTraceMiddleware_UniquePerRequest(t *testing.T) {
	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(TraceHeader), second.Header().Get(TraceHeader))
}
