package domain

import (
	"errors"
	"strings"
)

// ValidationError reports a malformed request. Always a client fault.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an unknown order or menu item. For menu lookups during order
// placement the message never names the missing id.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// UnavailableError reports menu items that exist but cannot be ordered right now.
type UnavailableError struct {
	Names []string
}

func (e *UnavailableError) Error() string {
	return "Item(s) not available: " + strings.Join(e.Names, ", ")
}

// AuthorizationError reports a principal acting outside its rights. It never carries data.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// StorageError wraps a failed storage operation. The transaction is already rolled back
// when this error is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether err is caused by the request rather than by the server.
func IsClientError(err error) bool {
	var (
		validationErr    *ValidationError
		notFoundErr      *NotFoundError
		unavailableErr   *UnavailableError
		authorizationErr *AuthorizationError
	)

	return errors.As(err, &validationErr) ||
		errors.As(err, &notFoundErr) ||
		errors.As(err, &unavailableErr) ||
		errors.As(err, &authorizationErr)
}
