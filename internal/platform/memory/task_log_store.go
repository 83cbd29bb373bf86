package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/domain"
	"github.com/phrazzld/taskio-api/internal/platform/logger"
	"github.com/phrazzld/taskio-api/internal/store"
)

// TaskLogStore implements store.TaskLogStore in memory.
//
// The parent task check in CreateForTask and ListForTask goes through tasks
// and releases that store's lock before s.mu is taken. A task deleted in
// between can still gain one log.
type TaskLogStore struct {
	mu     sync.RWMutex
	logs   map[uuid.UUID]*domain.TaskLog
	order  []uuid.UUID
	tasks  store.ActiveTaskReader
	logger *slog.Logger
}

// NewTaskLogStore creates an empty TaskLogStore that validates parents
// against tasks.
func NewTaskLogStore(tasks store.ActiveTaskReader, logger *slog.Logger) *TaskLogStore {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("tasks cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskLogStore{
		logs:   make(map[uuid.UUID]*domain.TaskLog),
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_log_store")),
	}
}

// Ensure TaskLogStore implements store.TaskLogStore interface
var _ store.TaskLogStore = (*TaskLogStore)(nil)

// CreateForTask implements store.TaskLogStore.CreateForTask
func (s *TaskLogStore) CreateForTask(
	ctx context.Context,
	taskID uuid.UUID,
	params domain.TaskLogParams,
) (*domain.TaskLog, error) {
	if _, err := s.tasks.GetActive(ctx, taskID); err != nil {
		return nil, err
	}

	entry, err := domain.NewTaskLog(taskID, params)
	if err != nil {
		return nil, invalidEntity("task_log", "create", err)
	}

	s.mu.Lock()
	s.logs[entry.ID] = entry
	s.order = append(s.order, entry.ID)
	s.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task log created",
		slog.String("log_id", entry.ID.String()),
		slog.String("task_id", taskID.String()))
	return entry.Clone(), nil
}

// ListForTask implements store.TaskLogStore.ListForTask
func (s *TaskLogStore) ListForTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLog, error) {
	if _, err := s.tasks.GetActive(ctx, taskID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]*domain.TaskLog, 0)
	for _, id := range s.order {
		if entry := s.logs[id]; entry.TaskID == taskID {
			logs = append(logs, entry.Clone())
		}
	}
	return logs, nil
}

// Get implements store.TaskLogStore.Get
func (s *TaskLogStore) Get(_ context.Context, id uuid.UUID) (*domain.TaskLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.logs[id]
	if !ok {
		return nil, store.ErrTaskLogNotFound
	}
	return entry.Clone(), nil
}

// Update implements store.TaskLogStore.Update
func (s *TaskLogStore) Update(
	ctx context.Context,
	id uuid.UUID,
	params domain.TaskLogParams,
) (*domain.TaskLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.logs[id]
	if !ok {
		return nil, store.ErrTaskLogNotFound
	}
	entry.Apply(params)

	logger.FromContextOrDefault(ctx, s.logger).Debug("task log updated",
		slog.String("log_id", id.String()))
	return entry.Clone(), nil
}

// Delete implements store.TaskLogStore.Delete
func (s *TaskLogStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.logs[id]; !ok {
		return store.ErrTaskLogNotFound
	}
	delete(s.logs, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("task log deleted",
		slog.String("log_id", id.String()))
	return nil
}
