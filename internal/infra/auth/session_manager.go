package auth

import (
	"context"
	"log/slog"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sessionSweepInterval = 15 * time.Minute

// SessionManagerParams holds dependencies for the session manager, injected by Fx.
type SessionManagerParams struct {
	fx.In

	Config   *config.Config
	Sessions repository.SessionRepository
	Tokens   service.TokenService
}

type sessionManager struct {
	ttl      time.Duration
	sessions repository.SessionRepository
	tokens   service.TokenService
	now      func() time.Time
}

// NewSessionManager builds the session manager backed by the configured session store.
func NewSessionManager(params SessionManagerParams) service.SessionManager {
	return &sessionManager{
		ttl:      params.Config.Session.TTL,
		sessions: params.Sessions,
		tokens:   params.Tokens,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Establish stores a new session and returns the token referencing it.
func (m *sessionManager) Establish(ctx context.Context, userID int64) (string, error) {
	now := m.now()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl),
		CreatedAt: now,
	}

	if err := m.sessions.Create(ctx, session); err != nil {
		return "", errors.Wrap(err, "failed to store session")
	}

	token, err := m.tokens.Issue(userID, session.ID, session.ExpiresAt)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue session token")
	}

	return token, nil
}

// Resume accepts a token only while its session record still exists.
func (m *sessionManager) Resume(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := m.tokens.Parse(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("invalid token")
	}

	session, err := m.sessions.FindByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WithDetails("session ended")
		}

		return nil, errors.Wrap(err, "failed to load session")
	}
	if session.UserID != claims.UserID {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("token does not match session")
	}

	return session, nil
}

func (m *sessionManager) CurrentUserID(ctx context.Context) (int64, error) {
	session, ok := service.SessionFromContext(ctx)
	if !ok {
		return 0, domainerrors.ErrUnauthenticated
	}

	return session.UserID, nil
}

// Terminate deletes the session in ctx. A session already gone counts as unauthenticated.
func (m *sessionManager) Terminate(ctx context.Context) error {
	session, ok := service.SessionFromContext(ctx)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	if err := m.sessions.Delete(ctx, session.ID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrUnauthenticated.WithDetails("session ended")
		}

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// SessionSweeperParams holds dependencies for the expired-session sweeper.
type SessionSweeperParams struct {
	fx.In
	fx.Lifecycle

	Sessions repository.SessionRepository
	Logger   *slog.Logger
}

// RegisterSessionSweeper periodically purges expired sessions while the application runs.
func RegisterSessionSweeper(params SessionSweeperParams) {
	ctx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sweepSessions(ctx, params.Sessions, params.Logger, sessionSweepInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func sweepSessions(ctx context.Context, sessions repository.SessionRepository, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := sessions.DeleteExpired(ctx)
			if err != nil {
				logger.WarnContext(ctx, "Failed to purge expired sessions", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				logger.DebugContext(ctx, "Purged expired sessions", slog.Int64("count", removed))
			}
		}
	}
}
