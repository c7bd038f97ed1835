package redis

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type sessionRecord struct {
	UserID    int64     `json:"uid"`
	ExpiresAt time.Time `json:"exp"`
	CreatedAt time.Time `json:"iat"`
}

// sessionRepository stores each session under its own key with a TTL matching its expiry.
type sessionRepository struct {
	client goredis.Cmdable
	now    func() time.Time
}

// NewSessionRepository is the constructor for the Redis session store.
func NewSessionRepository(client *goredis.Client) repository.SessionRepository {
	return &sessionRepository{
		client: client,
		now:    time.Now,
	}
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(repo.now())
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	payload, err := json.Marshal(sessionRecord{
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt.UTC(),
		CreatedAt: session.CreatedAt.UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := repo.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store session")
	}

	return nil
}

func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	payload, err := repo.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	session, err := decodeSession(id, payload)
	if err != nil {
		return nil, err
	}
	if session.Expired(repo.now()) {
		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := repo.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}
	if removed == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteExpired is a no-op: Redis evicts keys when their TTL elapses.
func (repo *sessionRepository) DeleteExpired(_ context.Context) (int64, error) {
	return 0, nil
}

func decodeSession(id uuid.UUID, payload []byte) (*entity.Session, error) {
	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &entity.Session{
		ID:        id,
		UserID:    record.UserID,
		ExpiresAt: record.ExpiresAt,
		CreatedAt: record.CreatedAt,
	}, nil
}
