package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/domain"
	"github.com/phrazzld/taskio-api/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore is a mock implementation of store.TaskStore
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, title string, description *string) (*domain.Task, error) {
	args := m.Called(ctx, title, description)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) ListActive(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) GetActive(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) UpdateActive(
	ctx context.Context,
	id uuid.UUID,
	title string,
	description *string,
) (*domain.Task, error) {
	args := m.Called(ctx, id, title, description)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskLogStore is a mock implementation of store.TaskLogStore
type MockTaskLogStore struct {
	mock.Mock
}

func (m *MockTaskLogStore) CreateForTask(
	ctx context.Context,
	taskID uuid.UUID,
	params domain.TaskLogParams,
) (*domain.TaskLog, error) {
	args := m.Called(ctx, taskID, params)
	entry, _ := args.Get(0).(*domain.TaskLog)
	return entry, args.Error(1)
}

func (m *MockTaskLogStore) ListForTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLog, error) {
	args := m.Called(ctx, taskID)
	entries, _ := args.Get(0).([]*domain.TaskLog)
	return entries, args.Error(1)
}

func (m *MockTaskLogStore) Get(ctx context.Context, id uuid.UUID) (*domain.TaskLog, error) {
	args := m.Called(ctx, id)
	entry, _ := args.Get(0).(*domain.TaskLog)
	return entry, args.Error(1)
}

func (m *MockTaskLogStore) Update(
	ctx context.Context,
	id uuid.UUID,
	params domain.TaskLogParams,
) (*domain.TaskLog, error) {
	args := m.Called(ctx, id, params)
	entry, _ := args.Get(0).(*domain.TaskLog)
	return entry, args.Error(1)
}

func (m *MockTaskLogStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recordingEmitter captures emitted events and optionally fails.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.Event
	err    error
}

func (e *recordingEmitter) EmitEvent(_ context.Context, event *events.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return e.err
}

func (e *recordingEmitter) types() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	types := make([]string, 0, len(e.events))
	for _, ev := range e.events {
		types = append(types, ev.Type)
	}
	return types
}

func strPtr(s string) *string {
	return &s
}
