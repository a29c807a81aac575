package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON, sets the Content-Type header and
// writes statusCode followed by the body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, result, http.StatusOK)
//	WriteJSON(w, result, http.StatusUnprocessableEntity)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ErrorResponse is the JSON body of every non-validation error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// WriteError writes {"error": message} with statusCode. The trace id of
// the request, if any, is echoed back.
func WriteError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	resp := ErrorResponse{Error: message}
	if r != nil {
		resp.TraceID, _ = GetTraceIDFromContext(r.Context())
	}
	_, _ = WriteJSON(w, resp, statusCode)
}
