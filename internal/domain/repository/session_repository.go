package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a session does not exist or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores server-side login sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves an unexpired session.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Delete removes a session. Deleting a missing session returns ErrSessionNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes every expired session and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
