// Package service holds the use cases behind the HTTP routes. Errors returned from here are
// either typed domain errors for the client or a *domain.StorageError.
package service

import (
	"context"
	"log/slog"

	"github.com/nikolayk812/canteen/internal/domain"
)

const (
	msgAuthRequired = "Not authorized to access this route. Please login."
	msgStaffOnly    = "Not authorized to access this route"
)

func requireUser(p domain.Principal) error {
	if p.ID == "" {
		return &domain.AuthorizationError{Message: msgAuthRequired}
	}
	return nil
}

func requireStaff(p domain.Principal) error {
	if err := requireUser(p); err != nil {
		return err
	}
	if !p.IsStaff() {
		return &domain.AuthorizationError{Message: msgStaffOnly}
	}
	return nil
}

// classify passes client errors through and wraps everything else as a storage failure.
func classify(ctx context.Context, lgr *slog.Logger, op string, err error) error {
	if domain.IsClientError(err) {
		return err
	}

	lgr.ErrorContext(ctx, "storage operation failed", "op", op, "error", err)
	return &domain.StorageError{Op: op, Err: err}
}
