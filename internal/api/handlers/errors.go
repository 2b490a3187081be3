package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Jidetireni/invoice-dashboard/internal/services"
)

const unknownErrorMessage = "Unknown error occurred"

func (h *Handlers) logError(r *http.Request, err error) {
	h.logger.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("server error")
}

// errorResponse flattens err into {"error": "<message>"}.
func (h *Handlers) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := unknownErrorMessage

	var apiErr *services.ApiError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Status
		message = apiErr.Message
	case err != nil && err.Error() != "":
		message = err.Error()
	}

	if writeErr := h.writeJSON(w, status, envelope{"error": message}, nil); writeErr != nil {
		h.logError(r, fmt.Errorf("failed to write error response: %w", writeErr))
		return
	}

	h.logError(r, err)
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, &services.ApiError{
		Status:  http.StatusNotFound,
		Message: "The requested resource could not be found",
	})
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, &services.ApiError{
		Status:  http.StatusMethodNotAllowed,
		Message: fmt.Sprintf("The %s method is not supported for this resource", r.Method),
	})
}
