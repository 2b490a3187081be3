package handlers

import (
	"net/http"
)

// Seed runs one seeding invocation. The request carries no input.
func (h *Handlers) Seed(w http.ResponseWriter, r *http.Request) {
	if _, err := h.seeder.Seed(r.Context()); err != nil {
		h.errorResponse(w, r, err)
		return
	}

	if err := h.writeJSON(w, http.StatusOK, envelope{"message": "Database seeded successfully"}, nil); err != nil {
		h.logError(r, err)
	}
}
