package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrMovieNotFound is returned when no active movie matches.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepository defines the persistence operations for movies.
type MovieRepository interface {
	// FindActiveByID retrieves an active movie.
	FindActiveByID(ctx context.Context, id int64) (*entity.Movie, error)

	// FindActivePage lists active movies ordered by id, with the total number of active movies.
	FindActivePage(ctx context.Context, page Pagination) ([]*entity.Movie, int64, error)

	// Create persists a new movie.
	Create(ctx context.Context, movie *entity.Movie) error

	// Update saves every mutable field of an existing movie.
	Update(ctx context.Context, movie *entity.Movie) error
}
