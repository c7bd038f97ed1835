package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side record of a successful login.
// The signed token handed to the client references it by ID, so deleting
// the record ends the session even while the token is unexpired.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
