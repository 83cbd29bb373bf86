package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/domain"
	"github.com/phrazzld/taskio-api/internal/events"
	"github.com/phrazzld/taskio-api/internal/platform/logger"
	"github.com/phrazzld/taskio-api/internal/store"
)

// TaskLogService provides operations on the work logs of tasks
type TaskLogService interface {
	// CreateLog records a new log against an active task
	CreateLog(ctx context.Context, taskID uuid.UUID, params domain.TaskLogParams) (*domain.TaskLog, error)

	// ListLogs returns the logs of an active task in creation order
	ListLogs(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLog, error)

	// GetLog retrieves a log by its ID
	GetLog(ctx context.Context, id uuid.UUID) (*domain.TaskLog, error)

	// UpdateLog applies the supplied fields to a log
	UpdateLog(ctx context.Context, id uuid.UUID, params domain.TaskLogParams) (*domain.TaskLog, error)

	// DeleteLog permanently removes a log
	DeleteLog(ctx context.Context, id uuid.UUID) error
}

type taskLogServiceImpl struct {
	logs         store.TaskLogStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskLogService creates a new TaskLogService.
// It returns an error if any of the required dependencies are nil.
func NewTaskLogService(
	logs store.TaskLogStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskLogService, error) {
	if logs == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "task log store cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskLogServiceImpl{
		logs:         logs,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "task_log_service"),
	}, nil
}

func (s *taskLogServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// CreateLog records a new log and emits task_log.created
func (s *taskLogServiceImpl) CreateLog(
	ctx context.Context,
	taskID uuid.UUID,
	params domain.TaskLogParams,
) (*domain.TaskLog, error) {
	entry, err := s.logs.CreateForTask(ctx, taskID, params)
	if err != nil {
		s.log(ctx).Debug("failed to create task log", "error", err, "task_id", taskID)
		return nil, NewServiceError("create_log", "failed to create task log", err)
	}

	s.log(ctx).Info("task log created",
		"log_id", entry.ID,
		"task_id", taskID)
	emit(ctx, s.eventEmitter, s.logger, events.TypeTaskLogCreated, entry.ID, entry)

	return entry, nil
}

// ListLogs returns the logs of an active task
func (s *taskLogServiceImpl) ListLogs(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLog, error) {
	entries, err := s.logs.ListForTask(ctx, taskID)
	if err != nil {
		s.log(ctx).Debug("failed to list task logs", "error", err, "task_id", taskID)
		return nil, NewServiceError("list_logs", "failed to list task logs", err)
	}
	return entries, nil
}

// GetLog retrieves a log by its ID
func (s *taskLogServiceImpl) GetLog(ctx context.Context, id uuid.UUID) (*domain.TaskLog, error) {
	entry, err := s.logs.Get(ctx, id)
	if err != nil {
		s.log(ctx).Debug("failed to retrieve task log", "error", err, "log_id", id)
		return nil, NewServiceError("get_log", "failed to retrieve task log", err)
	}
	return entry, nil
}

// UpdateLog applies the supplied fields and emits task_log.updated
func (s *taskLogServiceImpl) UpdateLog(
	ctx context.Context,
	id uuid.UUID,
	params domain.TaskLogParams,
) (*domain.TaskLog, error) {
	entry, err := s.logs.Update(ctx, id, params)
	if err != nil {
		s.log(ctx).Debug("failed to update task log", "error", err, "log_id", id)
		return nil, NewServiceError("update_log", "failed to update task log", err)
	}

	s.log(ctx).Info("task log updated", "log_id", id)
	emit(ctx, s.eventEmitter, s.logger, events.TypeTaskLogUpdated, entry.ID, entry)

	return entry, nil
}

// DeleteLog permanently removes a log and emits task_log.deleted
func (s *taskLogServiceImpl) DeleteLog(ctx context.Context, id uuid.UUID) error {
	if err := s.logs.Delete(ctx, id); err != nil {
		s.log(ctx).Debug("failed to delete task log", "error", err, "log_id", id)
		return NewServiceError("delete_log", "failed to delete task log", err)
	}

	s.log(ctx).Info("task log deleted", "log_id", id)
	emit(ctx, s.eventEmitter, s.logger, events.TypeTaskLogDeleted, id, nil)

	return nil
}
