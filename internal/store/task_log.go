package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/domain"
)

// TaskLogStore defines the interface for task log storage.
type TaskLogStore interface {
	// CreateForTask stores a new log for an active task.
	// Returns ErrTaskNotFound if the task is absent or inactive.
	CreateForTask(ctx context.Context, taskID uuid.UUID, params domain.TaskLogParams) (*domain.TaskLog, error)

	// ListForTask returns the logs of an active task in insertion order.
	// Returns ErrTaskNotFound if the task is absent or inactive.
	ListForTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLog, error)

	// Get returns a log by ID regardless of its task's state.
	// Returns ErrTaskLogNotFound if the log does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.TaskLog, error)

	// Update applies the supplied fields and recomputes the duration.
	// Returns ErrTaskLogNotFound if the log does not exist.
	Update(ctx context.Context, id uuid.UUID, params domain.TaskLogParams) (*domain.TaskLog, error)

	// Delete removes a log permanently.
	// Returns ErrTaskLogNotFound if the log does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
