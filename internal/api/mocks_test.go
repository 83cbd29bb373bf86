package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/domain"
)

// MockTaskService is a mock implementation of service.TaskService for testing
type MockTaskService struct {
	CreateTaskFn func(ctx context.Context, title string, description *string) (*domain.Task, error)
	ListTasksFn  func(ctx context.Context) ([]*domain.Task, error)
	GetTaskFn    func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, id uuid.UUID, title string, description *string) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskService) CreateTask(ctx context.Context, title string, description *string) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, title, description)
	}
	return nil, nil
}

func (m *MockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	title string,
	description *string,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, title, description)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return nil
}

// MockTaskLogService is a mock implementation of service.TaskLogService for testing
type MockTaskLogService struct {
	CreateLogFn func(ctx context.Context, taskID uuid.UUID, params domain.TaskLogParams) (*domain.TaskLog, error)
	ListLogsFn  func(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLog, error)
	GetLogFn    func(ctx context.Context, id uuid.UUID) (*domain.TaskLog, error)
	UpdateLogFn func(ctx context.Context, id uuid.UUID, params domain.TaskLogParams) (*domain.TaskLog, error)
	DeleteLogFn func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskLogService) CreateLog(
	ctx context.Context,
	taskID uuid.UUID,
	params domain.TaskLogParams,
) (*domain.TaskLog, error) {
	if m.CreateLogFn != nil {
		return m.CreateLogFn(ctx, taskID, params)
	}
	return nil, nil
}

func (m *MockTaskLogService) ListLogs(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskLog, error) {
	if m.ListLogsFn != nil {
		return m.ListLogsFn(ctx, taskID)
	}
	return nil, nil
}

func (m *MockTaskLogService) GetLog(ctx context.Context, id uuid.UUID) (*domain.TaskLog, error) {
	if m.GetLogFn != nil {
		return m.GetLogFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskLogService) UpdateLog(
	ctx context.Context,
	id uuid.UUID,
	params domain.TaskLogParams,
) (*domain.TaskLog, error) {
	if m.UpdateLogFn != nil {
		return m.UpdateLogFn(ctx, id, params)
	}
	return nil, nil
}

func (m *MockTaskLogService) DeleteLog(ctx context.Context, id uuid.UUID) error {
	if m.DeleteLogFn != nil {
		return m.DeleteLogFn(ctx, id)
	}
	return nil
}

// newTestRouter mounts the handlers the same way the server does, without
// middleware.
func newTestRouter(tasks *MockTaskService, logs *MockTaskLogService) http.Handler {
	r := chi.NewRouter()
	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(MethodNotAllowedHandler)

	taskHandler := NewTaskHandler(tasks, nil)
	logHandler := NewTaskLogHandler(logs, nil)

	r.Get("/health", HealthHandler)
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
		r.Get("/{id}/logs", logHandler.ListLogs)
		r.Post("/{id}/logs", logHandler.CreateLog)
	})
	r.Route("/logs", func(r chi.Router) {
		r.Get("/{id}", logHandler.GetLog)
		r.Put("/{id}", logHandler.UpdateLog)
		r.Delete("/{id}", logHandler.DeleteLog)
	})
	return r
}
