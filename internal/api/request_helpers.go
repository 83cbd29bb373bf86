package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskio-api/internal/api/shared"
	"github.com/phrazzld/taskio-api/internal/domain"
)

// getPathID extracts and parses the canonical UUID in the named path
// parameter. Errors wrap domain.ErrInvalidID.
func getPathID(r *http.Request, paramName string) (uuid.UUID, error) {
	return domain.ParseID(chi.URLParam(r, paramName))
}

// decodeBody decodes a required JSON body and validates it.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return shared.ValidateRequest(v)
}

// decodeOptionalBody is decodeBody for bodies that may be empty.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) error {
	if err := shared.DecodeOptionalJSON(w, r, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return shared.ValidateRequest(v)
}
