package common

import (
	"encoding/json"
	"net/http"

	apperrors "proplist-backend/pkg/errors"
)

// ErrorResponse is the JSON body sent for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON sends a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// RespondError sends an error response with a specific status code.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondAppError maps an application error onto the HTTP taxonomy. Errors
// that are not AppErrors are reported as opaque internal failures.
func RespondAppError(w http.ResponseWriter, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		RespondError(w, appErr.HTTPStatus, appErr.Message)
		return
	}
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

// RespondNoContent sends an empty 204 response.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ParseJSONBody parses a JSON request body with a size limit.
func ParseJSONBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
