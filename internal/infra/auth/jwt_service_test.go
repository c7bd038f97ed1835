package auth

import (
	"testing"
	"time"

	"catalog/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Session.TTL = time.Hour

	return cfg
}

func TestJWTService_IssueAndParse(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	sessionID := uuid.New()
	token, err := tokens.Issue(42, sessionID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	expired, err := tokens.Issue(1, uuid.New(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_secret_key_that_does_not_match"
	foreign, err := NewJWTService(other)
	require.NoError(t, err)
	forged, err := foreign.Issue(1, uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	noSession := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noSessionToken, err := noSession.SignedString([]byte(newTestConfig().SecretKey.Access))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":    "clearly-not-a-jwt-token-format",
		"expired":    expired,
		"forged":     forged,
		"no session": noSessionToken,
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := tokens.Parse(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
