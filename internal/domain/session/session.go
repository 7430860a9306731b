// Package session carries the authenticated operator and their property
// through a request. It replaces any process-wide "current user" state.
package session

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// Session is set once per request by the auth middleware from the access token.
type Session struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Email      string
	Role       string
}

// IsAdmin reports whether the operator may manage catalog and settings.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	if !ok || s.PropertyID == uuid.Nil {
		return Session{}, false
	}
	return s, true
}
