package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type movieService struct {
	movieRepo repository.MovieRepository
	logger    *slog.Logger
}

// MovieServiceParams holds dependencies for MovieService, injected by Fx.
type MovieServiceParams struct {
	fx.In

	MovieRepo repository.MovieRepository
	Logger    *slog.Logger
}

// NewMovieService is the constructor for movieService.
func NewMovieService(params MovieServiceParams) usecase.MovieUsecase {
	return &movieService{
		movieRepo: params.MovieRepo,
		logger:    params.Logger,
	}
}

func (srv *movieService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *movieService) GetByID(ctx context.Context, movieID int64) (*entity.Movie, error) {
	if err := usecase.ValidateID(movieID); err != nil {
		return nil, err
	}

	movie, err := srv.movieRepo.FindActiveByID(ctx, movieID)
	if err != nil {
		return nil, translateMovieError(err, movieID)
	}

	return movie, nil
}

func (srv *movieService) Create(ctx context.Context, input *usecase.CreateMovieInput) (*entity.Movie, error) {
	if input == nil {
		input = &usecase.CreateMovieInput{}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	releasedAt, err := parseReleaseDate(input.ReleasedAt)
	if err != nil {
		return nil, err
	}

	movie := &entity.Movie{
		Title:      input.Title,
		ReleasedAt: releasedAt,
		IsActive:   boolOrDefault(input.IsActive, true),
	}
	if err := srv.movieRepo.Create(ctx, movie); err != nil {
		srv.log(ctx).Error("Failed to create movie", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create movie")
	}

	srv.log(ctx).Info("Movie created", slog.Int64("movieID", movie.ID))

	return movie, nil
}

// Update applies the supplied fields. The movie must be active.
func (srv *movieService) Update(ctx context.Context, movieID int64, input *usecase.UpdateMovieInput) (*entity.Movie, error) {
	if err := usecase.ValidateID(movieID); err != nil {
		return nil, err
	}
	if input == nil {
		input = &usecase.UpdateMovieInput{}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var releasedAt time.Time
	if input.ReleasedAt != nil {
		parsed, err := parseReleaseDate(*input.ReleasedAt)
		if err != nil {
			return nil, err
		}
		releasedAt = parsed
	}

	movie, err := srv.movieRepo.FindActiveByID(ctx, movieID)
	if err != nil {
		return nil, translateMovieError(err, movieID)
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.ReleasedAt != nil {
		movie.ReleasedAt = releasedAt
	}
	if input.IsActive != nil {
		movie.IsActive = *input.IsActive
	}

	if err := srv.movieRepo.Update(ctx, movie); err != nil {
		return nil, translateMovieError(err, movieID)
	}

	srv.log(ctx).Debug("Movie updated", slog.Int64("movieID", movieID))

	return movie, nil
}

// Delete deactivates the movie.
func (srv *movieService) Delete(ctx context.Context, movieID int64) (*entity.Movie, error) {
	inactive := false

	return srv.Update(ctx, movieID, &usecase.UpdateMovieInput{IsActive: &inactive})
}

func (srv *movieService) Search(ctx context.Context, input usecase.SearchInput) (*usecase.Page[*entity.Movie], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	movies, total, err := srv.movieRepo.FindActivePage(ctx, input.Pagination())
	if err != nil {
		return nil, errors.Wrap(err, "failed to search movies")
	}

	return &usecase.Page[*entity.Movie]{
		Items: movies,
		Page:  input.Page,
		Limit: input.Limit,
		Total: total,
	}, nil
}

func parseReleaseDate(raw string) (time.Time, error) {
	releasedAt, err := time.ParseInLocation(entity.ReleaseDateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidReleaseDate.WithDetails("ReleasedAt must be a date formatted as " + entity.ReleaseDateLayout)
	}

	return releasedAt, nil
}

func translateMovieError(err error, movieID int64) error {
	if errors.Is(err, repository.ErrMovieNotFound) {
		return errors.Wrapf(domainerrors.ErrMovieNotFound, "movie %d", movieID)
	}

	return errors.Wrap(err, "failed to load movie")
}
