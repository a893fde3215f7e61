package api

import (
	"net/http"

	"github.com/phrazzld/avatar-api/internal/api/shared"
)

// Client-facing error messages. Internal error text is only logged.
const (
	ErrorProcessingMessage = "Error processing"
	NotFoundMessage        = "Not Found"
)

// respondServiceError reports a service failure as a generic 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, ErrorProcessingMessage, err)
}

// respondNotFound reports a missing resource as 404. err may be nil.
func respondNotFound(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, NotFoundMessage, err)
}
