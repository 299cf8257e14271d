package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/canteen/internal/domain"
)

const headerRequestID = "X-Request-ID"

const (
	msgLoginRequired = "Not authorized to access this route. Please login."
	msgStaffOnly     = "Not authorized to access this route"
)

type requestIDKey struct{}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.lgr.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestIDFrom(r.Context()),
		)
	})
}

func (h *Handler) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				h.lgr.ErrorContext(r.Context(), "panic recovered", "path", r.URL.Path, "error", fmt.Sprint(p))
				writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Message: "Internal server error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := h.auth.Authenticate(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Message: msgLoginRequired})
			return
		}

		next(w, r.WithContext(domain.WithPrincipal(r.Context(), principal)))
	})
}

func (h *Handler) requireStaff(next http.HandlerFunc) http.Handler {
	return h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if !principalOf(r).IsStaff() {
			writeJSON(w, http.StatusForbidden, envelope{Success: false, Message: msgStaffOnly})
			return
		}

		next(w, r)
	})
}

// principalOf returns the principal set by requireAuth, or the anonymous principal.
func principalOf(r *http.Request) domain.Principal {
	p, _ := domain.PrincipalFrom(r.Context())
	return p
}
