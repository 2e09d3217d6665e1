// Package shared centralizes JSON response envelopes so every handler renders
// success and failure the same way.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "campusconnect/pkg/domain-errors"
)

// WriteJSON renders v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope. Errors
// without a domain code render as 500 internal.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		body["message"] = err.Error()
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}
