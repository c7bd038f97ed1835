package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/validation"
)

// CreateMovieInput defines the data required to create a movie.
// ReleasedAt is a date formatted as YYYY-MM-DD.
type CreateMovieInput struct {
	Title      string `validate:"required,min=5,max=255"`
	ReleasedAt string `validate:"required,datetime=2006-01-02"`
	IsActive   *bool
}

// UpdateMovieInput defines a partial update. Nil or empty fields keep their stored values.
type UpdateMovieInput struct {
	Title      *string `validate:"omitempty,min=5,max=255"`
	ReleasedAt *string `validate:"omitempty,datetime=2006-01-02"`
	IsActive   *bool
}

var movieRules = validation.Rules{
	"Title":      domainerrors.ErrInvalidTitle,
	"ReleasedAt": domainerrors.ErrInvalidReleaseDate,
}

// Validate checks every field of the input.
func (in *CreateMovieInput) Validate() error {
	return validation.Struct(in, movieRules)
}

// Validate checks the supplied fields of the input, treating empty strings as omitted.
func (in *UpdateMovieInput) Validate() error {
	in.Title = nilIfEmpty(in.Title)
	in.ReleasedAt = nilIfEmpty(in.ReleasedAt)

	return validation.Struct(in, movieRules)
}

// MovieUsecase defines the business operations on movies.
type MovieUsecase interface {
	GetByID(ctx context.Context, movieID int64) (*entity.Movie, error)
	Create(ctx context.Context, input *CreateMovieInput) (*entity.Movie, error)
	Update(ctx context.Context, movieID int64, input *UpdateMovieInput) (*entity.Movie, error)
	Delete(ctx context.Context, movieID int64) (*entity.Movie, error)
	Search(ctx context.Context, input SearchInput) (*Page[*entity.Movie], error)
}
