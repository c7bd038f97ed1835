// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for people and alias persistence.
var (
	// ErrPersonNotFound is returned when no active person matches.
	ErrPersonNotFound = errors.New("person not found")
	// ErrAliasExists is returned when an alias value is already stored.
	ErrAliasExists = errors.New("alias already exists")
)

// PersonRepository defines the persistence operations for people.
type PersonRepository interface {
	// FindActiveByID retrieves an active person with its aliases.
	FindActiveByID(ctx context.Context, id int64) (*entity.Person, error)

	// FindActivePage lists active people ordered by id, with the total number of active people.
	FindActivePage(ctx context.Context, page Pagination) ([]*entity.Person, int64, error)

	// Create persists a new person. Aliases on the entity are ignored.
	Create(ctx context.Context, person *entity.Person) error

	// Update saves names and the active flag of an existing person.
	Update(ctx context.Context, person *entity.Person) error
}

// AliasRepository defines the persistence operations for person aliases.
type AliasRepository interface {
	// FindByPersonID lists the aliases of a person in insertion order.
	FindByPersonID(ctx context.Context, personID int64) ([]*entity.Alias, error)

	// FindByValues lists stored aliases whose value is one of values.
	FindByValues(ctx context.Context, values []string) ([]*entity.Alias, error)

	// Create persists a new alias. It returns ErrAliasExists when the value is taken.
	Create(ctx context.Context, alias *entity.Alias) error
}
