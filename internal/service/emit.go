package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/events"
	"github.com/phrazzld/taskio-api/internal/platform/logger"
)

// emit publishes a lifecycle event. The mutation it describes has already
// been applied, so failures are logged and never returned to the caller.
func emit(
	ctx context.Context,
	emitter events.EventEmitter,
	fallback *slog.Logger,
	eventType string,
	resourceID uuid.UUID,
	payload any,
) {
	log := logger.FromContextOrDefault(ctx, fallback)

	event, err := events.NewEvent(eventType, resourceID, payload)
	if err != nil {
		log.Error("failed to create lifecycle event",
			"error", err,
			"event_type", eventType,
			"resource_id", resourceID)
		return
	}

	if err := emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit lifecycle event",
			"error", err,
			"event_id", event.ID,
			"event_type", eventType,
			"resource_id", resourceID)
		return
	}

	log.Debug("lifecycle event emitted",
		"event_id", event.ID,
		"event_type", eventType,
		"resource_id", resourceID)
}
