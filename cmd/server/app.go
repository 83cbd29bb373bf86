package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/phrazzld/taskio-api/internal/config"
	"github.com/phrazzld/taskio-api/internal/events"
	"github.com/phrazzld/taskio-api/internal/platform/memory"
	"github.com/phrazzld/taskio-api/internal/service"
	"github.com/phrazzld/taskio-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	logger *slog.Logger

	// Stores
	taskStore    store.TaskStore
	taskLogStore store.TaskLogStore

	// Services
	taskService    service.TaskService
	taskLogService service.TaskLogService

	// Event system
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	tasks := memory.NewTaskStore(logger)
	app.taskStore = tasks
	app.taskLogStore = memory.NewTaskLogStore(tasks, logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewAuditLogHandler(logger))

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.taskLogService, err = service.NewTaskLogService(app.taskLogStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task log service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run listens on the configured port and serves until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.config.Server.Addr(), err)
	}

	if err := app.serve(ctx, ln, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
