package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskio-api/internal/api/shared"
	"github.com/phrazzld/taskio-api/internal/platform/logger"
	"github.com/phrazzld/taskio-api/internal/service"
)

// TaskLogHandler handles HTTP requests for task logs
type TaskLogHandler struct {
	logService service.TaskLogService
	logger     *slog.Logger
}

// NewTaskLogHandler creates a new TaskLogHandler
func NewTaskLogHandler(logService service.TaskLogService, logger *slog.Logger) *TaskLogHandler {
	if logService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logService cannot be nil for TaskLogHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskLogHandler{
		logService: logService,
		logger:     logger.With(slog.String("component", "task_log_handler")),
	}
}

// ListLogs handles GET /tasks/{id}/logs requests
func (h *TaskLogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	taskID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	entries, err := h.logService.ListLogs(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskLogsToResponse(entries))
}

// CreateLog handles POST /tasks/{id}/logs requests. An empty body starts a
// log now with no end.
func (h *TaskLogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	taskID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req TaskLogRequest
	if err := decodeOptionalBody(w, r, &req); err != nil {
		log.Debug("invalid create log request",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	entry, err := h.logService.CreateLog(r.Context(), taskID, req.params())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskLogToResponse(entry))
}

// GetLog handles GET /logs/{id} requests
func (h *TaskLogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	entry, err := h.logService.GetLog(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskLogToResponse(entry))
}

// UpdateLog handles PUT /logs/{id} requests. Fields left out of the body
// keep their current values.
func (h *TaskLogHandler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req TaskLogRequest
	if err := decodeOptionalBody(w, r, &req); err != nil {
		log.Debug("invalid update log request",
			slog.String("log_id", id.String()),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	entry, err := h.logService.UpdateLog(r.Context(), id, req.params())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskLogToResponse(entry))
}

// DeleteLog handles DELETE /logs/{id} requests
func (h *TaskLogHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.logService.DeleteLog(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}
