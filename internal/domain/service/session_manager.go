package service

import (
	"context"

	"catalog/internal/domain/entity"
)

// SessionManager owns the login session lifecycle. The current session is
// ambient: it travels in the request context once Resume has accepted a token.
type SessionManager interface {
	// Establish opens a session for userID and returns its token.
	Establish(ctx context.Context, userID int64) (string, error)

	// Resume validates a token and returns the live session it references.
	Resume(ctx context.Context, token string) (*entity.Session, error)

	// CurrentUserID returns the user of the session in ctx.
	CurrentUserID(ctx context.Context) (int64, error)

	// Terminate ends the session in ctx.
	Terminate(ctx context.Context) error
}

type sessionContextKey struct{}

// WithSession returns a copy of ctx carrying the resumed session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the session stored by WithSession, if any.
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*entity.Session)

	return session, ok && session != nil
}
