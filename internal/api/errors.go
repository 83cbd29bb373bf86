package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskio-api/internal/api/shared"
	"github.com/phrazzld/taskio-api/internal/domain"
	"github.com/phrazzld/taskio-api/internal/service"
	"github.com/phrazzld/taskio-api/internal/store"
)

// Error kinds reported in the "error" field of error responses.
const (
	KindBadRequest    = "BadRequest"
	KindInvalidUUID   = "InvalidUuid"
	KindNotFound      = "NotFound"
	KindDatabaseError = "DatabaseError"
	KindInternalError = "InternalError"
)

// Client-facing messages.
const (
	msgInvalidUUID      = "Invalid UUID format"
	msgTaskNotFound     = "task not found"
	msgLogNotFound      = "log not found"
	msgNotFound         = "resource not found"
	msgInvalidRequest   = "Invalid request format"
	msgInternalError    = "Internal server error"
	msgRouteNotFound    = "route not found"
	msgMethodNotAllowed = "method not allowed"
)

// ErrInvalidRequest marks a request body that could not be decoded.
var ErrInvalidRequest = errors.New("invalid request format")

// MapError maps internal errors to an HTTP status code, an error kind and a
// client-safe message. Internal detail never reaches the message.
func MapError(err error) (int, string, string) {
	var validationErrs validator.ValidationErrors
	var domainErr *domain.ValidationError

	switch {
	case err == nil:
		return http.StatusInternalServerError, KindInternalError, msgInternalError

	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, KindInvalidUUID, msgInvalidUUID

	case errors.Is(err, service.ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound, KindNotFound, msgTaskNotFound

	case errors.Is(err, service.ErrTaskLogNotFound), errors.Is(err, store.ErrTaskLogNotFound):
		return http.StatusNotFound, KindNotFound, msgLogNotFound

	case store.IsNotFoundError(err):
		return http.StatusNotFound, KindNotFound, msgNotFound

	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, KindBadRequest, msgInvalidRequest

	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, KindBadRequest, SanitizeValidationError(err)

	case errors.As(err, &domainErr):
		return http.StatusBadRequest, KindBadRequest, fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)

	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest, KindBadRequest, "Validation error"

	case errors.Is(err, store.ErrStorage):
		return http.StatusInternalServerError, KindDatabaseError, msgInternalError

	default:
		return http.StatusInternalServerError, KindInternalError, msgInternalError
	}
}

// HandleAPIError writes the mapped error response and logs the redacted
// detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind, message := MapError(err)
	shared.RespondWithErrorAndLog(w, r, status, kind, message, err)
}

// SanitizeValidationError turns validator errors into a short message naming
// the first failing field, e.g. "Invalid title: required field".
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// NotFoundHandler answers requests for unknown routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, KindNotFound, msgRouteNotFound)
}

// MethodNotAllowedHandler answers requests with a method the route does not serve.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, KindBadRequest, msgMethodNotAllowed)
}
