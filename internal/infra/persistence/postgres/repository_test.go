package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createPerson(t *testing.T, db *gorm.DB, first string, active bool, aliases ...string) *entity.Person {
	t.Helper()
	ctx := context.Background()

	person := &entity.Person{FirstName: first, LastName: "Lastname", IsActive: active}
	require.NoError(t, NewPersonRepository(db).Create(ctx, person))
	for _, value := range aliases {
		alias := &entity.Alias{PersonID: person.ID, Value: value}
		require.NoError(t, NewAliasRepository(db).Create(ctx, alias))
		person.Aliases = append(person.Aliases, alias)
	}

	return person
}

func createMovie(t *testing.T, db *gorm.DB, title string, active bool) *entity.Movie {
	t.Helper()

	movie := &entity.Movie{
		Title:      title,
		ReleasedAt: time.Date(1999, time.March, 31, 0, 0, 0, 0, time.UTC),
		IsActive:   active,
	}
	require.NoError(t, NewMovieRepository(db).Create(context.Background(), movie))

	return movie
}

func TestPersonRepository_FindActiveByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)
	ctx := context.Background()

	active := createPerson(t, db, "Keanu", true, "The One", "Neo Anderson")
	inactive := createPerson(t, db, "Hidden", false)

	found, err := repo.FindActiveByID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keanu", found.FirstName)
	assert.Equal(t, []string{"The One", "Neo Anderson"}, found.AliasValues())
	assert.False(t, found.CreatedAt.IsZero())

	_, err = repo.FindActiveByID(ctx, inactive.ID)
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)

	_, err = repo.FindActiveByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
}

func TestPersonRepository_FindActivePage(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)
	ctx := context.Background()

	var activeIDs []int64
	for i := range 5 {
		p := createPerson(t, db, fmt.Sprintf("Person%d", i), true)
		activeIDs = append(activeIDs, p.ID)
	}
	createPerson(t, db, "Inactive", false)

	people, total, err := repo.FindActivePage(ctx, repository.Pagination{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, people, 2)
	assert.Equal(t, activeIDs[2], people[0].ID)
	assert.Equal(t, activeIDs[3], people[1].ID)

	people, _, err = repo.FindActivePage(ctx, repository.Pagination{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestPersonRepository_UpdateKeepsFalseValues(t *testing.T) {
	db := newTestDB(t)
	repo := NewPersonRepository(db)
	ctx := context.Background()

	person := createPerson(t, db, "Keanu", true)
	person.FirstName = "Keanu Charles"
	person.IsActive = false
	require.NoError(t, repo.Update(ctx, person))

	_, err := repo.FindActiveByID(ctx, person.ID)
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)

	err = repo.Update(ctx, &entity.Person{ID: 424242, FirstName: "Nobody", LastName: "Nobody"})
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
}

func TestAliasRepository_UniqueValues(t *testing.T) {
	db := newTestDB(t)
	repo := NewAliasRepository(db)
	ctx := context.Background()

	owner := createPerson(t, db, "Keanu", true, "The One")
	other := createPerson(t, db, "Laurence", true)

	err := repo.Create(ctx, &entity.Alias{PersonID: other.ID, Value: "The One"})
	assert.ErrorIs(t, err, repository.ErrAliasExists)

	err = repo.Create(ctx, &entity.Alias{PersonID: owner.ID, Value: "The One"})
	assert.ErrorIs(t, err, repository.ErrAliasExists)

	found, err := repo.FindByValues(ctx, []string{"The One", "Morpheus"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, owner.ID, found[0].PersonID)

	found, err = repo.FindByValues(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)

	byPerson, err := repo.FindByPersonID(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, byPerson)
}

func TestMovieRepository_CreateAndUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := createMovie(t, db, "The Matrix", true)
	require.NotZero(t, movie.ID)

	found, err := repo.FindActiveByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "1999-03-31", found.ReleaseDate())

	found.Title = "The Matrix Reloaded"
	found.ReleasedAt = time.Date(2003, time.May, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindActiveByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix Reloaded", found.Title)
	assert.Equal(t, 2003, found.ReleaseYear())

	found.IsActive = false
	require.NoError(t, repo.Update(ctx, found))

	_, err = repo.FindActiveByID(ctx, movie.ID)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)

	movies, total, err := repo.FindActivePage(ctx, repository.Pagination{Page: 0, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, movies)
}

func TestRoleRepository_AddIfAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	person := createPerson(t, db, "Keanu", true, "The One")
	movie := createMovie(t, db, "The Matrix", true)

	added, err := repo.AddIfAbsent(ctx, &entity.Role{Kind: entity.RoleActor, PersonID: person.ID, MovieID: movie.ID})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.AddIfAbsent(ctx, &entity.Role{Kind: entity.RoleActor, PersonID: person.ID, MovieID: movie.ID})
	require.NoError(t, err)
	assert.False(t, added)

	// The same pair may hold another kind.
	added, err = repo.AddIfAbsent(ctx, &entity.Role{Kind: entity.RoleProducer, PersonID: person.ID, MovieID: movie.ID})
	require.NoError(t, err)
	assert.True(t, added)

	movies, err := repo.FindMoviesByPerson(ctx, entity.RoleActor, person.ID)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, movie.ID, movies[0].ID)

	people, err := repo.FindPeopleByMovie(ctx, entity.RoleActor, movie.ID)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, []string{"The One"}, people[0].AliasValues())

	directors, err := repo.FindPeopleByMovie(ctx, entity.RoleDirector, movie.ID)
	require.NoError(t, err)
	assert.Empty(t, directors)
}

func TestRoleRepository_DeleteAndInactiveFiltering(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	person := createPerson(t, db, "Keanu", true)
	hidden := createMovie(t, db, "Hidden Movie", false)
	shown := createMovie(t, db, "Shown Movie", true)

	for _, movie := range []*entity.Movie{hidden, shown} {
		_, err := repo.AddIfAbsent(ctx, &entity.Role{Kind: entity.RoleDirector, PersonID: person.ID, MovieID: movie.ID})
		require.NoError(t, err)
	}

	movies, err := repo.FindMoviesByPerson(ctx, entity.RoleDirector, person.ID)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, shown.ID, movies[0].ID)

	removed, err := repo.Delete(ctx, entity.RoleDirector, person.ID, shown.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, entity.RoleDirector, person.ID, shown.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.Delete(ctx, entity.RoleKind("writer"), person.ID, shown.ID)
	assert.Error(t, err)
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Username: "admin", PasswordHash: "digest", IsActive: false}
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Create(ctx, &entity.User{Username: "admin", PasswordHash: "other"})
	assert.ErrorIs(t, err, repository.ErrUsernameExists)

	found, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	found.IsActive = true
	found.PasswordHash = "rehashed"
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.IsActive)
	assert.Equal(t, "rehashed", found.PasswordHash)

	_, err = repo.FindByUsername(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSessionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	live := &entity.Session{ID: uuid.New(), UserID: 1, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	stale := &entity.Session{ID: uuid.New(), UserID: 1, ExpiresAt: now.Add(-time.Hour), CreatedAt: now.Add(-2 * time.Hour)}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, stale))

	found, err := repo.FindByID(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)

	_, err = repo.FindByID(ctx, stale.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	purged, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	require.NoError(t, repo.Delete(ctx, live.ID))
	assert.ErrorIs(t, repo.Delete(ctx, live.ID), repository.ErrSessionNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		person := &entity.Person{FirstName: "Rolled", LastName: "Back", IsActive: true}
		if err := repos.PersonRepo().Create(ctx, person); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, total, err := NewPersonRepository(db).FindActivePage(ctx, repository.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)

	err = tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.UserRepo().Create(ctx, &entity.User{Username: "committed", PasswordHash: "x", IsActive: true})
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).FindByUsername(ctx, "committed")
	assert.NoError(t, err)
}
