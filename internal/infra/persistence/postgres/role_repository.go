package postgres

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository serves the three role join tables through one model.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func roleTable(kind entity.RoleKind) (string, error) {
	table, ok := model.RoleTable(kind)
	if !ok {
		return "", domainerrors.ErrInvalidRole.WithDetails("unknown role " + kind.String())
	}

	return table, nil
}

// AddIfAbsent inserts the join row with ON CONFLICT DO NOTHING, so concurrent
// adds of the same pair cannot fail on the primary key.
func (repo *roleRepository) AddIfAbsent(ctx context.Context, role *entity.Role) (bool, error) {
	table, err := roleTable(role.Kind)
	if err != nil {
		return false, err
	}

	roleM := &model.RoleModel{
		PersonID:  role.PersonID,
		MovieID:   role.MovieID,
		CreatedAt: role.CreatedAt,
	}
	if roleM.CreatedAt.IsZero() {
		roleM.CreatedAt = time.Now().UTC()
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(roleM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.NewDatabaseExecuteError(result.Error, "role references a missing row")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add "+role.Kind.String())
	}

	role.CreatedAt = roleM.CreatedAt

	return result.RowsAffected > 0, nil
}

func (repo *roleRepository) Delete(ctx context.Context, kind entity.RoleKind, personID, movieID int64) (bool, error) {
	table, err := roleTable(kind)
	if err != nil {
		return false, err
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Where("person_id = ? AND movie_id = ?", personID, movieID).
		Delete(&model.RoleModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+kind.String())
	}

	return result.RowsAffected > 0, nil
}

func (repo *roleRepository) FindMoviesByPerson(ctx context.Context, kind entity.RoleKind, personID int64) ([]*entity.Movie, error) {
	table, err := roleTable(kind)
	if err != nil {
		return nil, err
	}

	var moviesM []model.MovieModel
	err = repo.db.WithContext(ctx).
		Model(&model.MovieModel{}).
		Joins("JOIN "+table+" ON "+table+".movie_id = entity_movie.id").
		Where(table+".person_id = ? AND entity_movie.is_active = ?", personID, true).
		Order("entity_movie.id ASC").
		Find(&moviesM).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find movies for %s", kind)
	}

	return toMoviesDomain(moviesM), nil
}

func (repo *roleRepository) FindPeopleByMovie(ctx context.Context, kind entity.RoleKind, movieID int64) ([]*entity.Person, error) {
	table, err := roleTable(kind)
	if err != nil {
		return nil, err
	}

	var peopleM []model.PersonModel
	err = repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Preload("Aliases", preloadAliases).
		Joins("JOIN "+table+" ON "+table+".person_id = entity_person.id").
		Where(table+".movie_id = ? AND entity_person.is_active = ?", movieID, true).
		Order("entity_person.id ASC").
		Find(&peopleM).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find people for %s", kind)
	}

	people := make([]*entity.Person, 0, len(peopleM))
	for i := range peopleM {
		people = append(people, toPersonDomain(&peopleM[i]))
	}

	return people, nil
}

// releaseDay drops the clock part of a release date.
func releaseDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
