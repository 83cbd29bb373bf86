package memory

import (
	"fmt"

	"github.com/phrazzld/taskio-api/internal/store"
)

// invalidEntity wraps a domain validation failure so it matches both
// store.ErrInvalidEntity and the original domain error.
func invalidEntity(entity, operation string, err error) error {
	return store.NewStoreError(entity, operation, "validation failed",
		fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
}
