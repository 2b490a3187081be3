package handlers

import (
	"encoding/json"
	"net/http"
)

type envelope map[string]any

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}
