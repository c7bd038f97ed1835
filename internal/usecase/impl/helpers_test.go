package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/postgres"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testStore wires the GORM repositories over a private in-memory SQLite database.
type testStore struct {
	db         *gorm.DB
	txManager  repository.TransactionManager
	personRepo repository.PersonRepository
	aliasRepo  repository.AliasRepository
	movieRepo  repository.MovieRepository
	roleRepo   repository.RoleRepository
	userRepo   repository.UserRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	db, err := postgres.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &testStore{
		db:         db,
		txManager:  postgres.NewTransactionManager(db),
		personRepo: postgres.NewPersonRepository(db),
		aliasRepo:  postgres.NewAliasRepository(db),
		movieRepo:  postgres.NewMovieRepository(db),
		roleRepo:   postgres.NewRoleRepository(db),
		userRepo:   postgres.NewUserRepository(db),
	}
}

func (s *testStore) peopleService() usecase.PeopleUsecase {
	return NewPeopleService(PeopleServiceParams{
		TxManager:  s.txManager,
		PersonRepo: s.personRepo,
		AliasRepo:  s.aliasRepo,
		Logger:     newDiscardLogger(),
	})
}

func (s *testStore) movieService() usecase.MovieUsecase {
	return NewMovieService(MovieServiceParams{
		MovieRepo: s.movieRepo,
		Logger:    newDiscardLogger(),
	})
}

func (s *testStore) roleService() usecase.RoleUsecase {
	return NewRoleService(RoleServiceParams{
		People:   s.peopleService(),
		Movies:   s.movieService(),
		RoleRepo: s.roleRepo,
		Logger:   newDiscardLogger(),
	})
}

func (s *testStore) mustCreatePerson(t *testing.T, first string, aliases ...string) *entity.Person {
	t.Helper()

	person, err := s.peopleService().Create(context.Background(), &usecase.CreatePersonInput{
		FirstName: first,
		LastName:  "Lastname",
		Aliases:   aliases,
	})
	require.NoError(t, err)

	return person
}

func (s *testStore) mustCreateMovie(t *testing.T, title, releasedAt string) *entity.Movie {
	t.Helper()

	movie, err := s.movieService().Create(context.Background(), &usecase.CreateMovieInput{
		Title:      title,
		ReleasedAt: releasedAt,
	})
	require.NoError(t, err)

	return movie
}

func ptr[T any](v T) *T {
	return &v
}
