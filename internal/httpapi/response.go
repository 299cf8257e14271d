package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikolayk812/canteen/internal/domain"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(message string, data any) envelope {
	return envelope{Success: true, Message: message, Data: data}
}

func list[T any](data []T) envelope {
	count := len(data)
	if data == nil {
		data = []T{}
	}
	return envelope{Success: true, Count: &count, Data: data}
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps typed domain errors to status codes. Anything else is logged and
// reported as fallback without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		validationErr    *domain.ValidationError
		unavailableErr   *domain.UnavailableError
		notFoundErr      *domain.NotFoundError
		authorizationErr *domain.AuthorizationError
	)

	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.As(err, &validationErr):
		status, message = http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &unavailableErr):
		status, message = http.StatusBadRequest, unavailableErr.Error()
	case errors.As(err, &notFoundErr):
		status, message = http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &authorizationErr):
		status, message = http.StatusForbidden, authorizationErr.Error()
	default:
		h.lgr.ErrorContext(r.Context(), fallback,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestIDFrom(r.Context()),
			"error", err,
		)
	}

	writeJSON(w, status, envelope{Success: false, Message: message})
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: message})
}
