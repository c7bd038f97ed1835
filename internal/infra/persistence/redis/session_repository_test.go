package redis

import (
	"context"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKey(t *testing.T) {
	id := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")

	assert.Equal(t, "session:7d444840-9dc0-11d1-b245-5ffdce74fad2", sessionKey(id))
}

func TestDecodeSession(t *testing.T) {
	id := uuid.New()
	expires := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)
	payload, err := json.Marshal(sessionRecord{UserID: 7, ExpiresAt: expires, CreatedAt: expires.Add(-time.Hour)})
	require.NoError(t, err)

	session, err := decodeSession(id, payload)
	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
	assert.Equal(t, int64(7), session.UserID)
	assert.True(t, session.ExpiresAt.Equal(expires))

	_, err = decodeSession(id, []byte("not json"))
	assert.Error(t, err)
}

// memoryRedis answers the string commands the session store issues.
type memoryRedis struct {
	goredis.Cmdable

	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)

		return cmd
	}

	m.values[key] = string(value.([]byte))
	m.ttls[key] = expiration
	cmd.SetVal("OK")

	return cmd
}

func (m *memoryRedis) Get(ctx context.Context, key string) *goredis.StringCmd {
	cmd := goredis.NewStringCmd(ctx)
	switch value, ok := m.values[key]; {
	case m.err != nil:
		cmd.SetErr(m.err)
	case !ok:
		cmd.SetErr(goredis.Nil)
	default:
		cmd.SetVal(value)
	}

	return cmd
}

func (m *memoryRedis) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	cmd := goredis.NewIntCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)

		return cmd
	}

	var removed int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			delete(m.ttls, key)
			removed++
		}
	}
	cmd.SetVal(removed)

	return cmd
}

func newTestSessionRepository(client goredis.Cmdable, now time.Time) *sessionRepository {
	return &sessionRepository{client: client, now: func() time.Time { return now }}
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, time.January, 2, 3, 0, 0, 0, time.UTC)
	client := newMemoryRedis()
	repo := newTestSessionRepository(client, now)

	session := &entity.Session{ID: uuid.New(), UserID: 42, ExpiresAt: now.Add(30 * time.Minute), CreatedAt: now}
	require.NoError(t, repo.Create(ctx, session))
	assert.Equal(t, 30*time.Minute, client.ttls[sessionKey(session.ID)])

	found, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, int64(42), found.UserID)
	assert.True(t, found.ExpiresAt.Equal(session.ExpiresAt))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_CreateRejectsExpired(t *testing.T) {
	now := time.Date(2030, time.January, 2, 3, 0, 0, 0, time.UTC)
	client := newMemoryRedis()
	repo := newTestSessionRepository(client, now)

	err := repo.Create(context.Background(), &entity.Session{ID: uuid.New(), UserID: 1, ExpiresAt: now})
	require.Error(t, err)
	assert.Empty(t, client.values)
}

func TestSessionRepository_FindIgnoresElapsedSession(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, time.January, 2, 3, 0, 0, 0, time.UTC)
	client := newMemoryRedis()
	session := &entity.Session{ID: uuid.New(), UserID: 9, ExpiresAt: now.Add(time.Minute), CreatedAt: now}
	require.NoError(t, newTestSessionRepository(client, now).Create(ctx, session))

	_, err := newTestSessionRepository(client, now.Add(2*time.Minute)).FindByID(ctx, session.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, time.January, 2, 3, 0, 0, 0, time.UTC)
	client := newMemoryRedis()
	repo := newTestSessionRepository(client, now)

	session := &entity.Session{ID: uuid.New(), UserID: 3, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	require.NoError(t, repo.Create(ctx, session))

	require.NoError(t, repo.Delete(ctx, session.ID))
	assert.ErrorIs(t, repo.Delete(ctx, session.ID), repository.ErrSessionNotFound)

	_, err := repo.FindByID(ctx, session.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_BackendErrors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, time.January, 2, 3, 0, 0, 0, time.UTC)
	client := newMemoryRedis()
	errRefused := errors.New("connection refused")
	client.err = errRefused
	repo := newTestSessionRepository(client, now)
	var execErr *domainerrors.DatabaseExecuteError

	err := repo.Create(ctx, &entity.Session{ID: uuid.New(), UserID: 1, ExpiresAt: now.Add(time.Hour)})
	require.ErrorIs(t, err, errRefused)
	assert.True(t, errors.As(err, &execErr))

	_, err = repo.FindByID(ctx, uuid.New())
	require.ErrorIs(t, err, errRefused)
	assert.NotErrorIs(t, err, repository.ErrSessionNotFound)

	err = repo.Delete(ctx, uuid.New())
	require.ErrorIs(t, err, errRefused)
	assert.True(t, errors.As(err, &execErr))
}
