package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// taskIDParam is the chi URL parameter holding the task ID.
const taskIDParam = "id"

// getPathTaskID extracts the integer task ID from the URL path.
//
// Returns:
//   - (id, nil): The parsed ID
//   - (0, error): A ValidationError wrapping domain.ErrInvalidID when the
//     parameter is missing or not an integer
func getPathTaskID(r *http.Request) (int, error) {
	pathParam := chi.URLParam(r, taskIDParam)
	if pathParam == "" {
		return 0, domain.NewValidationError(taskIDParam, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.Atoi(pathParam)
	if err != nil {
		return 0, domain.NewValidationError(taskIDParam, "must be an integer", domain.ErrInvalidID)
	}

	return id, nil
}
