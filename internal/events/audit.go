package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskio-api/internal/platform/logger"
)

// AuditLogHandler writes every event to the structured log at INFO. The
// request-scoped logger in ctx is preferred so audit lines carry the trace ID.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler.
func NewAuditLogHandler(l *slog.Logger) *AuditLogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &AuditLogHandler{logger: l}
}

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *Event) error {
	log := logger.FromContextOrDefault(ctx, h.logger).With(slog.String("component", "audit"))
	log.LogAttrs(ctx, slog.LevelInfo, "resource changed",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("resource_id", event.ResourceID.String()),
		slog.Time("event_at", event.CreatedAt),
	)
	return nil
}
