package domain

import (
	"context"
	"errors"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

var ErrInvalidRole = errors.New("invalid role")

func ToRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), nil
	}

	return "", ErrInvalidRole
}

// Principal is the authenticated caller as reported by the identity collaborator.
type Principal struct {
	ID   string
	Role Role
}

func (p Principal) IsStaff() bool {
	return p.Role == RoleAdmin
}

// CanView reports whether p may read order o.
func (p Principal) CanView(o Order) bool {
	return p.IsStaff() || o.IsOwnedBy(p.ID)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
