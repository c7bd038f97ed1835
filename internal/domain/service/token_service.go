package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	UserID    int64     `json:"uid"`
	SessionID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for signing and verifying session tokens.
type TokenService interface {
	// Issue signs a token for the session that expires at expiresAt.
	Issue(userID int64, sessionID uuid.UUID, expiresAt time.Time) (string, error)

	// Parse verifies a token and returns its claims.
	Parse(token string) (*SessionClaims, error)
}
