package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/domain"
)

// ActiveTaskReader is the read side of TaskStore that log stores need to
// check a parent task.
type ActiveTaskReader interface {
	// GetActive returns the task when it exists and is active.
	// Returns ErrTaskNotFound otherwise.
	GetActive(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

// TaskStore defines the interface for task storage.
// Inactive tasks behave as absent for every operation.
type TaskStore interface {
	ActiveTaskReader

	// Create stores a new active task and returns it.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, title string, description *string) (*domain.Task, error)

	// ListActive returns every active task in insertion order.
	// Returns an empty slice when there are none.
	ListActive(ctx context.Context) ([]*domain.Task, error)

	// UpdateActive overwrites the title and description of an active task.
	// Returns ErrTaskNotFound if the task is absent or inactive.
	UpdateActive(ctx context.Context, id uuid.UUID, title string, description *string) (*domain.Task, error)

	// SoftDelete marks an active task inactive.
	// Returns ErrTaskNotFound if the task is absent or already inactive.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
