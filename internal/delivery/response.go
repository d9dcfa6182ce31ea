package delivery

import (
	"encoding/json"
	"net/http"
)

type failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeFailure is the single mapping from any handler error to the wire.
func writeFailure(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, failure{
		Success: false,
		Error:   err.Error(),
	})
}
