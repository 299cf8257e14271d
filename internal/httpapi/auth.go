package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nikolayk812/canteen/internal/domain"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Authenticator resolves the caller of a request. It returns ErrUnauthenticated when the
// request carries no usable identity.
type Authenticator interface {
	Authenticate(r *http.Request) (domain.Principal, error)
}

// HeaderAuthenticator trusts identity headers set by an authenticating gateway in front of
// the service. A missing role means customer.
type HeaderAuthenticator struct{}

func (HeaderAuthenticator) Authenticate(r *http.Request) (domain.Principal, error) {
	id := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if id == "" {
		return domain.Principal{}, ErrUnauthenticated
	}

	role := domain.RoleCustomer
	if raw := strings.TrimSpace(r.Header.Get(HeaderUserRole)); raw != "" {
		parsed, err := domain.ToRole(strings.ToLower(raw))
		if err != nil {
			return domain.Principal{}, errors.Join(ErrUnauthenticated, err)
		}
		role = parsed
	}

	return domain.Principal{ID: id, Role: role}, nil
}
