package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository is the constructor for movieRepository.
func NewMovieRepository(db *gorm.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

func (repo *movieRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Movie, error) {
	var movieM model.MovieModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&movieM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMovieNotFound
		}

		return nil, errors.Wrap(err, "failed to find movie by id")
	}

	return toMovieDomain(&movieM), nil
}

func (repo *movieRepository) FindActivePage(ctx context.Context, page repository.Pagination) ([]*entity.Movie, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.MovieModel{}).
		Where("is_active = ?", true).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count movies")
	}

	var moviesM []model.MovieModel
	err = repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&moviesM).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list movies")
	}

	return toMoviesDomain(moviesM), total, nil
}

func (repo *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	movieM := fromMovieDomain(movie)

	if err := repo.db.WithContext(ctx).Create(movieM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create movie")
	}

	movie.ID = movieM.ID
	movie.CreatedAt = movieM.CreatedAt

	return nil
}

func (repo *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MovieModel{}).
		Where("id = ?", movie.ID).
		Updates(map[string]any{
			"title":       movie.Title,
			"released_at": releaseDay(movie.ReleasedAt),
			"is_active":   movie.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update movie")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

func toMovieDomain(data *model.MovieModel) *entity.Movie {
	if data == nil {
		return nil
	}

	return &entity.Movie{
		ID:         data.ID,
		Title:      data.Title,
		ReleasedAt: releaseDay(data.ReleasedAt),
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
	}
}

func toMoviesDomain(data []model.MovieModel) []*entity.Movie {
	movies := make([]*entity.Movie, 0, len(data))
	for i := range data {
		movies = append(movies, toMovieDomain(&data[i]))
	}

	return movies
}

func fromMovieDomain(data *entity.Movie) *model.MovieModel {
	return &model.MovieModel{
		ID:         data.ID,
		Title:      data.Title,
		ReleasedAt: releaseDay(data.ReleasedAt),
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
	}
}
