package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/domain"
	"github.com/phrazzld/taskio-api/internal/platform/logger"
	"github.com/phrazzld/taskio-api/internal/store"
)

// TaskStore implements store.TaskStore in memory.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[uuid.UUID]*domain.Task
	order  []uuid.UUID
	logger *slog.Logger
}

// NewTaskStore creates an empty TaskStore.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make(map[uuid.UUID]*domain.Task),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, title string, description *string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description)
	if err != nil {
		log.Debug("task validation failed during create", slog.String("error", err.Error()))
		return nil, invalidEntity("task", "create", err)
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.mu.Unlock()

	log.Debug("task created", slog.String("task_id", task.ID.String()))
	return task.Clone(), nil
}

// ListActive implements store.TaskStore.ListActive
func (s *TaskStore) ListActive(_ context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(s.order))
	for _, id := range s.order {
		if task := s.tasks[id]; task.IsActive {
			tasks = append(tasks, task.Clone())
		}
	}
	return tasks, nil
}

// GetActive implements store.TaskStore.GetActive
func (s *TaskStore) GetActive(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.activeLocked(id)
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// UpdateActive implements store.TaskStore.UpdateActive
func (s *TaskStore) UpdateActive(
	ctx context.Context,
	id uuid.UUID,
	title string,
	description *string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.activeLocked(id)
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	if err := task.Update(title, description); err != nil {
		log.Debug("task validation failed during update",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()))
		return nil, invalidEntity("task", "update", err)
	}

	return task.Clone(), nil
}

// SoftDelete implements store.TaskStore.SoftDelete
func (s *TaskStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.activeLocked(id)
	if !ok {
		return store.ErrTaskNotFound
	}
	task.Deactivate()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task deactivated",
		slog.String("task_id", id.String()))
	return nil
}

// activeLocked returns the stored task when it exists and is active.
// Callers must hold s.mu.
func (s *TaskStore) activeLocked(id uuid.UUID) (*domain.Task, bool) {
	task, ok := s.tasks[id]
	if !ok || !task.IsActive {
		return nil, false
	}
	return task, true
}
