package service

import (
	"context"

	"github.com/sangkips/innkeeper-api/internal/domain/session"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
)

// currentSession returns the operator session or ErrNoSession
func currentSession(ctx context.Context) (session.Session, error) {
	s, ok := session.FromContext(ctx)
	if !ok {
		return session.Session{}, apperror.ErrNoSession
	}
	return s, nil
}

// requireAdmin returns the session if the operator is an admin
func requireAdmin(ctx context.Context) (session.Session, error) {
	s, err := currentSession(ctx)
	if err != nil {
		return s, err
	}
	if !s.IsAdmin() {
		return s, apperror.ErrForbidden
	}
	return s, nil
}
