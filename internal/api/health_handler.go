package api

import (
	"net/http"

	"github.com/phrazzld/taskio-api/internal/api/shared"
)

// HealthHandler handles GET /health requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Taskio API is running",
	})
}
