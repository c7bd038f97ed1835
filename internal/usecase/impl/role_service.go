package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/metrics"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleService implements the RoleUsecase interface. Existence checks go
// through the people and movie usecases so their errors pass through unchanged.
type roleService struct {
	people   usecase.PeopleUsecase
	movies   usecase.MovieUsecase
	roleRepo repository.RoleRepository
	logger   *slog.Logger
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	People   usecase.PeopleUsecase
	Movies   usecase.MovieUsecase
	RoleRepo repository.RoleRepository
	Logger   *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		people:   params.People,
		movies:   params.Movies,
		roleRepo: params.RoleRepo,
		logger:   params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolve loads the movie first, then the person.
func (srv *roleService) resolve(ctx context.Context, personID, movieID int64) (*entity.Person, *entity.Movie, error) {
	movie, err := srv.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, nil, err
	}

	person, err := srv.people.GetByID(ctx, personID)
	if err != nil {
		return nil, nil, err
	}

	return person, movie, nil
}

func (srv *roleService) Add(ctx context.Context, kind entity.RoleKind, personID, movieID int64) (*entity.Person, *entity.Movie, error) {
	person, movie, err := srv.resolve(ctx, personID, movieID)
	if err != nil {
		return nil, nil, err
	}

	added, err := srv.roleRepo.AddIfAbsent(ctx, &entity.Role{
		Kind:      kind,
		PersonID:  person.ID,
		MovieID:   movie.ID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add role", slog.String("role", kind.String()), slog.Any("error", err))

		return nil, nil, errors.Wrapf(err, "failed to add %s", kind)
	}
	if added {
		metrics.RecordRoleChange(kind.String(), "added")
		srv.log(ctx).Info("Role added",
			slog.String("role", kind.String()), slog.Int64("personID", person.ID), slog.Int64("movieID", movie.ID))
	}

	return person, movie, nil
}

func (srv *roleService) Delete(ctx context.Context, kind entity.RoleKind, personID, movieID int64) (*entity.Person, *entity.Movie, error) {
	person, movie, err := srv.resolve(ctx, personID, movieID)
	if err != nil {
		return nil, nil, err
	}

	removed, err := srv.roleRepo.Delete(ctx, kind, person.ID, movie.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to delete role", slog.String("role", kind.String()), slog.Any("error", err))

		return nil, nil, errors.Wrapf(err, "failed to delete %s", kind)
	}
	if removed {
		metrics.RecordRoleChange(kind.String(), "removed")
		srv.log(ctx).Info("Role removed",
			slog.String("role", kind.String()), slog.Int64("personID", person.ID), slog.Int64("movieID", movie.ID))
	}

	return person, movie, nil
}

func (srv *roleService) MoviesForPerson(ctx context.Context, personID int64) (entity.Filmography, error) {
	if err := usecase.ValidateID(personID); err != nil {
		return nil, err
	}

	filmography := make(entity.Filmography, len(entity.RoleKinds))
	for _, kind := range entity.RoleKinds {
		movies, err := srv.roleRepo.FindMoviesByPerson(ctx, kind, personID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %s credits", kind)
		}
		filmography[kind] = movies
	}

	return filmography, nil
}

func (srv *roleService) PeopleForMovie(ctx context.Context, movieID int64) (entity.Credits, error) {
	if err := usecase.ValidateID(movieID); err != nil {
		return nil, err
	}

	credits := make(entity.Credits, len(entity.RoleKinds))
	for _, kind := range entity.RoleKinds {
		people, err := srv.roleRepo.FindPeopleByMovie(ctx, kind, movieID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %s credits", kind)
		}
		credits[kind] = people
	}

	return credits, nil
}
