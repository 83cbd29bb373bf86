package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskio-api/internal/api/shared"
	"github.com/phrazzld/taskio-api/internal/domain"
	"github.com/phrazzld/taskio-api/internal/platform/logger"
	"github.com/phrazzld/taskio-api/internal/service"
	"github.com/phrazzld/taskio-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	_, parseErr := domain.ParseID("not-a-uuid")
	validationErr := shared.ValidateRequest(TaskRequest{})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		wantMsg    string
	}{
		{"invalid id", parseErr, http.StatusBadRequest, KindInvalidUUID, "Invalid UUID format"},
		{"service task not found", service.ErrTaskNotFound, http.StatusNotFound, KindNotFound, "task not found"},
		{"store task not found", store.ErrTaskNotFound, http.StatusNotFound, KindNotFound, "task not found"},
		{"service log not found", service.ErrTaskLogNotFound, http.StatusNotFound, KindNotFound, "log not found"},
		{"store log not found", store.ErrTaskLogNotFound, http.StatusNotFound, KindNotFound, "log not found"},
		{"generic not found", store.ErrNotFound, http.StatusNotFound, KindNotFound, "resource not found"},
		{
			"bad json",
			fmt.Errorf("%w: %w", ErrInvalidRequest, errors.New("unexpected EOF")),
			http.StatusBadRequest, KindBadRequest, "Invalid request format",
		},
		{"request validation", validationErr, http.StatusBadRequest, KindBadRequest, "Invalid title: required field"},
		{
			"domain validation",
			domain.NewValidationError("title", "cannot be empty", domain.ErrEmptyTitle),
			http.StatusBadRequest, KindBadRequest, "Invalid title: cannot be empty",
		},
		{
			"store invalid entity",
			store.NewStoreError("task", "create", "validation failed",
				fmt.Errorf("%w: %w", store.ErrInvalidEntity,
					domain.NewValidationError("title", "cannot be empty", domain.ErrEmptyTitle))),
			http.StatusBadRequest, KindBadRequest, "Invalid title: cannot be empty",
		},
		{
			"bare invalid entity",
			fmt.Errorf("%w: negative span", store.ErrInvalidEntity),
			http.StatusBadRequest, KindBadRequest, "Validation error",
		},
		{
			"storage failure",
			store.NewStoreError("task", "create", "disk full", store.ErrStorage),
			http.StatusInternalServerError, KindDatabaseError, "Internal server error",
		},
		{
			"wrapped service error",
			&service.ServiceError{Operation: "list_tasks", Message: "failed", Err: errors.New("boom")},
			http.StatusInternalServerError, KindInternalError, "Internal server error",
		},
		{"nil", nil, http.StatusInternalServerError, KindInternalError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, kind, msg := MapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestHandleAPIError_DoesNotLeakDetail(t *testing.T) {
	l, buf := logger.NewTestLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req = req.WithContext(logger.WithLogger(shared.WithTraceID(req.Context(), "trace-1"), l))
	rec := httptest.NewRecorder()

	err := store.NewStoreError("task", "list", "read /var/lib/taskio/tasks.db failed", store.ErrStorage)
	HandleAPIError(rec, req, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error":"DatabaseError","message":"Internal server error","trace_id":"trace-1"}`,
		rec.Body.String())

	entry := buf.FindEntry(t, "API error response")
	require.NotNil(t, entry)
	assert.Equal(t, "ERROR", entry["level"])
	assert.NotContains(t, entry["error"], "/var/lib/taskio")
	assert.Contains(t, entry["error"], "[REDACTED_PATH]")
}

func TestSanitizeValidationError(t *testing.T) {
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("plain")))
	assert.Equal(t, "Invalid title: required field", SanitizeValidationError(shared.ValidateRequest(TaskRequest{})))
}
