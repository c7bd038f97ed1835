package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
)

var roleSegments = map[string]entity.RoleKind{
	"actors":    entity.RoleActor,
	"directors": entity.RoleDirector,
	"producers": entity.RoleProducer,
}

// ParseRoleKind maps a plural route segment such as "actors" to its role kind.
func ParseRoleKind(segment string) (entity.RoleKind, error) {
	kind, ok := roleSegments[segment]
	if !ok {
		return "", domainerrors.ErrInvalidRole.WithDetails("role must be one of actors, directors, producers")
	}

	return kind, nil
}

// RoleUsecase manages the actor, director and producer credits between people and movies.
// It defines no errors of its own: existence failures come from the people and movie usecases.
type RoleUsecase interface {
	// Add credits the person on the movie. Adding an existing credit is a no-op.
	Add(ctx context.Context, kind entity.RoleKind, personID, movieID int64) (*entity.Person, *entity.Movie, error)

	// Delete removes the credit. Removing a missing credit is a no-op.
	Delete(ctx context.Context, kind entity.RoleKind, personID, movieID int64) (*entity.Person, *entity.Movie, error)

	// MoviesForPerson lists the active movies a person is credited on, by kind.
	MoviesForPerson(ctx context.Context, personID int64) (entity.Filmography, error)

	// PeopleForMovie lists the active people credited on a movie, by kind.
	PeopleForMovie(ctx context.Context, movieID int64) (entity.Credits, error)
}
