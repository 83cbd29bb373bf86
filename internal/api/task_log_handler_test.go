package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/domain"
	"github.com/phrazzld/taskio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedLogID = uuid.MustParse("22222222-2222-4222-8222-222222222222")

func TestTaskLogHandler_CreateLog(t *testing.T) {
	var gotParams domain.TaskLogParams
	logs := &MockTaskLogService{
		CreateLogFn: func(_ context.Context, taskID uuid.UUID, params domain.TaskLogParams) (*domain.TaskLog, error) {
			if taskID != fixedTaskID {
				return nil, service.ErrTaskNotFound
			}
			gotParams = params
			entry, err := domain.NewTaskLog(taskID, params)
			require.NoError(t, err)
			entry.ID = fixedLogID
			return entry, nil
		},
	}
	router := newTestRouter(&MockTaskService{}, logs)
	path := "/tasks/" + fixedTaskID.String() + "/logs"

	t.Run("closed interval computes duration and label", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, path,
			`{"start_at":"2024-01-01T10:00:00Z","end_at":"2024-01-01T10:45:00Z","memo":"focus"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var resp TaskLogResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, fixedLogID, resp.ID)
		assert.Equal(t, fixedTaskID, resp.TaskID)
		require.NotNil(t, resp.DurationMin)
		assert.Equal(t, int64(45), *resp.DurationMin)
		require.NotNil(t, resp.DurationLabel)
		assert.Equal(t, "45m", *resp.DurationLabel)
		require.NotNil(t, resp.Memo)
		assert.Equal(t, "focus", *resp.Memo)
	})

	t.Run("offset timestamps accepted", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, path,
			`{"start_at":"2024-01-01T12:00:00+02:00","end_at":"2024-01-01T11:30:00Z"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, gotParams.StartAt)
		assert.True(t, gotParams.StartAt.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))

		var resp TaskLogResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(90), *resp.DurationMin)
		assert.Equal(t, "1h 30m", *resp.DurationLabel)
	})

	t.Run("empty body starts an open log", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, path, "")

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.TaskLogParams{}, gotParams)
		assert.JSONEq(t, `null`, string(mustField(t, rec.Body.Bytes(), "duration_label")))
		assert.JSONEq(t, `null`, string(mustField(t, rec.Body.Bytes(), "end_at")))
	})

	t.Run("bad timestamp", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, path, `{"start_at":"yesterday"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request format", decodeError(t, rec).Message)
	})

	t.Run("missing task", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/tasks/"+uuid.NewString()+"/logs", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "task not found", decodeError(t, rec).Message)
	})
}

func TestTaskLogHandler_ListLogs(t *testing.T) {
	logs := &MockTaskLogService{
		ListLogsFn: func(_ context.Context, taskID uuid.UUID) ([]*domain.TaskLog, error) {
			if taskID != fixedTaskID {
				return nil, service.ErrTaskNotFound
			}
			return []*domain.TaskLog{}, nil
		},
	}
	router := newTestRouter(&MockTaskService{}, logs)

	rec := doRequest(t, router, http.MethodGet, "/tasks/"+fixedTaskID.String()+"/logs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/tasks/"+uuid.NewString()+"/logs", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/tasks/xyz/logs", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindInvalidUUID, decodeError(t, rec).Error)
}

func TestTaskLogHandler_UpdateLog(t *testing.T) {
	var gotParams domain.TaskLogParams
	logs := &MockTaskLogService{
		UpdateLogFn: func(_ context.Context, id uuid.UUID, params domain.TaskLogParams) (*domain.TaskLog, error) {
			if id != fixedLogID {
				return nil, service.ErrTaskLogNotFound
			}
			gotParams = params
			entry, err := domain.NewTaskLog(fixedTaskID, domain.TaskLogParams{})
			require.NoError(t, err)
			entry.ID = id
			entry.Apply(params)
			return entry, nil
		},
	}
	router := newTestRouter(&MockTaskService{}, logs)
	path := "/logs/" + fixedLogID.String()

	t.Run("empty memo is supplied", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPut, path, `{"memo":""}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotParams.Memo)
		assert.Equal(t, "", *gotParams.Memo)
		assert.Nil(t, gotParams.StartAt)
		assert.Nil(t, gotParams.EndAt)
	})

	t.Run("empty body is a no-op update", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPut, path, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.TaskLogParams{}, gotParams)
	})

	t.Run("missing log", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPut, "/logs/"+uuid.NewString(), `{}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "log not found", decodeError(t, rec).Message)
	})
}

func TestTaskLogHandler_GetAndDelete(t *testing.T) {
	logs := &MockTaskLogService{
		GetLogFn: func(_ context.Context, id uuid.UUID) (*domain.TaskLog, error) {
			if id != fixedLogID {
				return nil, service.ErrTaskLogNotFound
			}
			entry, err := domain.NewTaskLog(fixedTaskID, domain.TaskLogParams{})
			require.NoError(t, err)
			entry.ID = id
			return entry, nil
		},
		DeleteLogFn: func(_ context.Context, id uuid.UUID) error {
			if id != fixedLogID {
				return service.ErrTaskLogNotFound
			}
			return nil
		},
	}
	router := newTestRouter(&MockTaskService{}, logs)

	rec := doRequest(t, router, http.MethodGet, "/logs/"+fixedLogID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"`+fixedLogID.String()+`"`, string(mustField(t, rec.Body.Bytes(), "id")))

	rec = doRequest(t, router, http.MethodGet, "/logs/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/logs/"+fixedLogID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, router, http.MethodDelete, "/logs/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func mustField(t *testing.T, body []byte, field string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	raw, ok := fields[field]
	require.True(t, ok, "field %q missing from %s", field, body)
	return raw
}
