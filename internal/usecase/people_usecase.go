package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/validation"
)

// --- Input DTOs ---

// CreatePersonInput defines the data required to create a person.
type CreatePersonInput struct {
	FirstName string   `validate:"required,min=5,max=255"`
	LastName  string   `validate:"required,min=5,max=255"`
	Aliases   []string `validate:"required,min=1,unique,dive,required,min=5,max=255"`
	IsActive  *bool
}

// UpdatePersonInput defines a partial update. Nil or empty fields keep their stored values;
// aliases are appended to the existing ones.
type UpdatePersonInput struct {
	FirstName *string  `validate:"omitempty,min=5,max=255"`
	LastName  *string  `validate:"omitempty,min=5,max=255"`
	Aliases   []string `validate:"omitempty,unique,dive,required,min=5,max=255"`
	IsActive  *bool
}

var personRules = validation.Rules{
	"FirstName": domainerrors.ErrInvalidFirstName,
	"LastName":  domainerrors.ErrInvalidLastName,
	"Aliases":   domainerrors.ErrInvalidAlias,
}

// Validate checks every field of the input.
func (in *CreatePersonInput) Validate() error {
	return validation.Struct(in, personRules)
}

// Validate checks the supplied fields of the input, treating empty strings as omitted.
func (in *UpdatePersonInput) Validate() error {
	in.FirstName = nilIfEmpty(in.FirstName)
	in.LastName = nilIfEmpty(in.LastName)

	return validation.Struct(in, personRules)
}

// PeopleUsecase defines the business operations on people and their aliases.
type PeopleUsecase interface {
	GetByID(ctx context.Context, personID int64) (*entity.Person, error)
	GetAliasesByPersonID(ctx context.Context, personID int64) ([]*entity.Alias, error)
	GetAliasesByValue(ctx context.Context, values []string) ([]*entity.Alias, error)
	Create(ctx context.Context, input *CreatePersonInput) (*entity.Person, error)
	Update(ctx context.Context, personID int64, input *UpdatePersonInput) (*entity.Person, error)
	Delete(ctx context.Context, personID int64) (*entity.Person, error)
	Search(ctx context.Context, input SearchInput) (*Page[*entity.Person], error)

	// AddAliasToPerson inserts an alias through the caller's transaction without committing it.
	AddAliasToPerson(ctx context.Context, repos repository.RepositoryFactory, personID int64, value string) (*entity.Alias, error)
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}
