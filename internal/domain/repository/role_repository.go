package repository

import (
	"context"

	"catalog/internal/domain/entity"
)

// RoleRepository defines the persistence operations for the actor, director
// and producer join tables.
type RoleRepository interface {
	// AddIfAbsent inserts the join row unless the pair already holds the role.
	// It reports whether a row was inserted; an existing row is not an error.
	AddIfAbsent(ctx context.Context, role *entity.Role) (bool, error)

	// Delete removes the join row if present and reports whether one was removed.
	Delete(ctx context.Context, kind entity.RoleKind, personID, movieID int64) (bool, error)

	// FindMoviesByPerson lists the active movies a person holds the role on.
	FindMoviesByPerson(ctx context.Context, kind entity.RoleKind, personID int64) ([]*entity.Movie, error)

	// FindPeopleByMovie lists the active people holding the role on a movie, with aliases.
	FindPeopleByMovie(ctx context.Context, kind entity.RoleKind, movieID int64) ([]*entity.Person, error)
}
