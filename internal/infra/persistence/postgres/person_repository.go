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

// personRepository implements the domain.PersonRepository interface using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

func preloadAliases(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// FindActiveByID retrieves an active person and its aliases.
func (repo *personRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Person, error) {
	var personM model.PersonModel
	err := repo.db.WithContext(ctx).
		Preload("Aliases", preloadAliases).
		Where("id = ? AND is_active = ?", id, true).
		First(&personM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by id")
	}

	return toPersonDomain(&personM), nil
}

// FindActivePage lists one page of active people ordered by id.
func (repo *personRepository) FindActivePage(ctx context.Context, page repository.Pagination) ([]*entity.Person, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.PersonModel{}).Where("is_active = ?", true)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count people")
	}

	var peopleM []model.PersonModel
	err := repo.db.WithContext(ctx).
		Preload("Aliases", preloadAliases).
		Where("is_active = ?", true).
		Order("id ASC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&peopleM).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list people")
	}

	people := make([]*entity.Person, 0, len(peopleM))
	for i := range peopleM {
		people = append(people, toPersonDomain(&peopleM[i]))
	}

	return people, total, nil
}

// Create persists the person row only; aliases are stored through AliasRepository.
func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	if err := repo.db.WithContext(ctx).Omit("Aliases").Create(personM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required person information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create person")
	}

	person.ID = personM.ID
	person.CreatedAt = personM.CreatedAt

	return nil
}

// Update saves names and the active flag. The map keeps false and empty values in the statement.
func (repo *personRepository) Update(ctx context.Context, person *entity.Person) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id = ?", person.ID).
		Updates(map[string]any{
			"first_name": person.FirstName,
			"last_name":  person.LastName,
			"is_active":  person.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

// aliasRepository implements the domain.AliasRepository interface using GORM.
type aliasRepository struct {
	db *gorm.DB
}

// NewAliasRepository is the constructor for aliasRepository.
func NewAliasRepository(db *gorm.DB) repository.AliasRepository {
	return &aliasRepository{db: db}
}

func (repo *aliasRepository) FindByPersonID(ctx context.Context, personID int64) ([]*entity.Alias, error) {
	var aliasesM []model.AliasModel
	err := repo.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("id ASC").
		Find(&aliasesM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find aliases by person id")
	}

	return toAliasesDomain(aliasesM), nil
}

func (repo *aliasRepository) FindByValues(ctx context.Context, values []string) ([]*entity.Alias, error) {
	if len(values) == 0 {
		return []*entity.Alias{}, nil
	}

	var aliasesM []model.AliasModel
	err := repo.db.WithContext(ctx).
		Where("value IN ?", values).
		Order("id ASC").
		Find(&aliasesM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find aliases by value")
	}

	return toAliasesDomain(aliasesM), nil
}

// Create stores one alias. A value held by anyone, including the same person, yields ErrAliasExists.
func (repo *aliasRepository) Create(ctx context.Context, alias *entity.Alias) error {
	aliasM := fromAliasDomain(alias)

	if err := repo.db.WithContext(ctx).Create(aliasM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAliasExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPersonNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alias")
	}

	alias.ID = aliasM.ID
	alias.CreatedAt = aliasM.CreatedAt

	return nil
}

func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		Aliases:   toAliasesDomain(data.Aliases),
	}
}

func fromPersonDomain(data *entity.Person) *model.PersonModel {
	return &model.PersonModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}

func toAliasesDomain(data []model.AliasModel) []*entity.Alias {
	aliases := make([]*entity.Alias, 0, len(data))
	for i := range data {
		aliases = append(aliases, &entity.Alias{
			ID:        data[i].ID,
			PersonID:  data[i].PersonID,
			Value:     data[i].Value,
			CreatedAt: data[i].CreatedAt,
		})
	}

	return aliases
}

func fromAliasDomain(data *entity.Alias) *model.AliasModel {
	return &model.AliasModel{
		ID:        data.ID,
		PersonID:  data.PersonID,
		Value:     data.Value,
		CreatedAt: data.CreatedAt,
	}
}
