package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskio-api/internal/domain"
	"github.com/phrazzld/taskio-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps them to 404.
var (
	// ErrTaskNotFound indicates the task does not exist or has been deleted.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskLogNotFound indicates the task log does not exist.
	ErrTaskLogNotFound = errors.New("log not found")
)

// ServiceError wraps unexpected errors from the services with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "update_log")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Store not-found errors are translated to the service sentinels. Validation
// failures, whether raw domain errors or store.ErrInvalidEntity, are returned
// unchanged.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, ErrTaskLogNotFound), errors.Is(err, store.ErrTaskLogNotFound):
		return ErrTaskLogNotFound
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
