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

// TaskService provides task-related operations
type TaskService interface {
	// CreateTask creates a new active task
	CreateTask(ctx context.Context, title string, description *string) (*domain.Task, error)

	// ListTasks returns all active tasks in creation order
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask retrieves an active task by its ID
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// UpdateTask replaces the title and description of an active task
	UpdateTask(ctx context.Context, id uuid.UUID, title string, description *string) (*domain.Task, error)

	// DeleteTask soft-deletes an active task
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks        store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	tasks store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if tasks == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "task store cannot be nil",
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

	return &taskServiceImpl{
		tasks:        tasks,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "task_service"),
	}, nil
}

func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// CreateTask creates a new active task and emits task.created
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title string,
	description *string,
) (*domain.Task, error) {
	task, err := s.tasks.Create(ctx, title, description)
	if err != nil {
		s.log(ctx).Debug("failed to create task", "error", err)
		return nil, NewServiceError("create_task", "failed to create task", err)
	}

	s.log(ctx).Info("task created", "task_id", task.ID)
	emit(ctx, s.eventEmitter, s.logger, events.TypeTaskCreated, task.ID, task)

	return task, nil
}

// ListTasks returns all active tasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.ListActive(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list tasks", "error", err)
		return nil, NewServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// GetTask retrieves an active task
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetActive(ctx, id)
	if err != nil {
		s.log(ctx).Debug("failed to retrieve task", "error", err, "task_id", id)
		return nil, NewServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask replaces the title and description of an active task and emits task.updated
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	title string,
	description *string,
) (*domain.Task, error) {
	task, err := s.tasks.UpdateActive(ctx, id, title, description)
	if err != nil {
		s.log(ctx).Debug("failed to update task", "error", err, "task_id", id)
		return nil, NewServiceError("update_task", "failed to update task", err)
	}

	s.log(ctx).Info("task updated", "task_id", task.ID)
	emit(ctx, s.eventEmitter, s.logger, events.TypeTaskUpdated, task.ID, task)

	return task, nil
}

// DeleteTask soft-deletes an active task and emits task.deleted
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.tasks.SoftDelete(ctx, id); err != nil {
		s.log(ctx).Debug("failed to delete task", "error", err, "task_id", id)
		return NewServiceError("delete_task", "failed to delete task", err)
	}

	s.log(ctx).Info("task deleted", "task_id", id)
	emit(ctx, s.eventEmitter, s.logger, events.TypeTaskDeleted, id, nil)

	return nil
}
