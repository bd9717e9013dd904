// Package handlers implements the HTTP handlers of the agent service.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gourav1211/officeagent/api"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, api.ErrorResponse{
		Error:   message,
		Code:    http.StatusText(status),
		Details: details,
	})
}
