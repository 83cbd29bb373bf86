package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/taskio-api/internal/platform/logger"
	"github.com/phrazzld/taskio-api/internal/redact"
)

// InMemoryEventEmitter dispatches each event to its handlers synchronously,
// in registration order, on the caller's goroutine.
type InMemoryEventEmitter struct {
	mu       sync.RWMutex
	handlers []EventHandler
	logger   *slog.Logger
}

// Ensure InMemoryEventEmitter implements EventEmitter
var _ EventEmitter = (*InMemoryEventEmitter)(nil)

// NewInMemoryEventEmitter returns an emitter with no handlers.
// If logger is nil, a default logger will be used.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{logger: logger}
}

// log prefers the request logger carried by ctx.
func (e *InMemoryEventEmitter) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, e.logger).With(slog.String("component", "event_emitter"))
}

// RegisterHandler subscribes handler to every subsequent event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	e.handlers = append(e.handlers, handler)
	count := len(e.handlers)
	e.mu.Unlock()

	e.log(context.Background()).Debug("event handler registered", slog.Int("handlers", count))
}

// EmitEvent delivers event to every handler, even after one fails, and
// returns the first handler error.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *Event) error {
	e.mu.RLock()
	handlers := append([]EventHandler(nil), e.handlers...)
	e.mu.RUnlock()

	log := e.log(ctx).With(
		slog.String("event_type", event.Type),
		slog.String("resource_id", event.ResourceID.String()),
	)

	if len(handlers) == 0 {
		log.Debug("event dropped, no handlers")
		return nil
	}

	var firstErr error
	for i, handler := range handlers {
		err := handler.HandleEvent(ctx, event)
		if err == nil {
			continue
		}
		log.Error("event handler failed",
			slog.Int("handler", i),
			slog.String("event_id", event.ID.String()),
			slog.String("error", redact.Error(err)))
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
