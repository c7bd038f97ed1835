// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/metrics"
	"catalog/internal/usecase"
	"catalog/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// aliasInput validates a single alias value.
type aliasInput struct {
	Value string `validate:"required,min=5,max=255"`
}

var aliasRules = validation.Rules{"Value": domainerrors.ErrInvalidAlias}

// peopleService implements the PeopleUsecase interface.
type peopleService struct {
	txManager  repository.TransactionManager
	personRepo repository.PersonRepository
	aliasRepo  repository.AliasRepository
	logger     *slog.Logger
}

// PeopleServiceParams holds dependencies for PeopleService, injected by Fx.
type PeopleServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	PersonRepo repository.PersonRepository
	AliasRepo  repository.AliasRepository
	Logger     *slog.Logger
}

// NewPeopleService is the constructor for peopleService.
func NewPeopleService(params PeopleServiceParams) usecase.PeopleUsecase {
	return &peopleService{
		txManager:  params.TxManager,
		personRepo: params.PersonRepo,
		aliasRepo:  params.AliasRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *peopleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetByID returns an active person with its aliases.
func (srv *peopleService) GetByID(ctx context.Context, personID int64) (*entity.Person, error) {
	if err := usecase.ValidateID(personID); err != nil {
		return nil, err
	}

	person, err := srv.personRepo.FindActiveByID(ctx, personID)
	if err != nil {
		return nil, translatePersonError(err, personID)
	}

	return person, nil
}

func (srv *peopleService) GetAliasesByPersonID(ctx context.Context, personID int64) ([]*entity.Alias, error) {
	if err := usecase.ValidateID(personID); err != nil {
		return nil, err
	}

	aliases, err := srv.aliasRepo.FindByPersonID(ctx, personID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find aliases by person")
	}

	return aliases, nil
}

func (srv *peopleService) GetAliasesByValue(ctx context.Context, values []string) ([]*entity.Alias, error) {
	if len(values) == 0 {
		return nil, domainerrors.ErrInvalidAlias.WithDetails("Aliases is required")
	}
	for _, value := range values {
		if value == "" {
			return nil, domainerrors.ErrInvalidAlias.WithDetails("Aliases must not contain empty values")
		}
	}

	aliases, err := srv.aliasRepo.FindByValues(ctx, values)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find aliases by value")
	}

	return aliases, nil
}

// Create stores the person and all of its aliases in one transaction.
func (srv *peopleService) Create(ctx context.Context, input *usecase.CreatePersonInput) (*entity.Person, error) {
	if input == nil {
		input = &usecase.CreatePersonInput{}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	person := &entity.Person{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		IsActive:  boolOrDefault(input.IsActive, true),
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := rejectTakenAliases(ctx, repos.AliasRepo(), input.Aliases, 0); err != nil {
			return err
		}

		if err := repos.PersonRepo().Create(ctx, person); err != nil {
			return errors.Wrap(err, "failed to create person")
		}

		return srv.attachAliases(ctx, repos, person, input.Aliases)
	})
	if err != nil {
		srv.logFailure(ctx, "Failed to create person", err)

		return nil, err
	}

	srv.log(ctx).Info("Person created", slog.Int64("personID", person.ID), slog.Int("aliases", len(person.Aliases)))

	return person, nil
}

// Update applies the supplied fields and appends new aliases in one transaction.
func (srv *peopleService) Update(ctx context.Context, personID int64, input *usecase.UpdatePersonInput) (*entity.Person, error) {
	if err := usecase.ValidateID(personID); err != nil {
		return nil, err
	}
	if input == nil {
		input = &usecase.UpdatePersonInput{}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var person *entity.Person
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := rejectTakenAliases(ctx, repos.AliasRepo(), input.Aliases, personID); err != nil {
			return err
		}

		found, err := repos.PersonRepo().FindActiveByID(ctx, personID)
		if err != nil {
			return translatePersonError(err, personID)
		}
		person = found

		if input.FirstName != nil {
			person.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			person.LastName = *input.LastName
		}
		if input.IsActive != nil {
			person.IsActive = *input.IsActive
		}

		if err := repos.PersonRepo().Update(ctx, person); err != nil {
			return translatePersonError(err, personID)
		}

		fresh := make([]string, 0, len(input.Aliases))
		for _, value := range input.Aliases {
			if !person.OwnsAlias(value) {
				fresh = append(fresh, value)
			}
		}

		return srv.attachAliases(ctx, repos, person, fresh)
	})
	if err != nil {
		srv.logFailure(ctx, "Failed to update person", err, slog.Int64("personID", personID))

		return nil, err
	}

	srv.log(ctx).Debug("Person updated", slog.Int64("personID", personID))

	return person, nil
}

// Delete deactivates the person.
func (srv *peopleService) Delete(ctx context.Context, personID int64) (*entity.Person, error) {
	inactive := false

	return srv.Update(ctx, personID, &usecase.UpdatePersonInput{IsActive: &inactive})
}

func (srv *peopleService) Search(ctx context.Context, input usecase.SearchInput) (*usecase.Page[*entity.Person], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	people, total, err := srv.personRepo.FindActivePage(ctx, input.Pagination())
	if err != nil {
		return nil, errors.Wrap(err, "failed to search people")
	}

	return &usecase.Page[*entity.Person]{
		Items: people,
		Page:  input.Page,
		Limit: input.Limit,
		Total: total,
	}, nil
}

// AddAliasToPerson inserts through repos and leaves committing to the caller.
func (srv *peopleService) AddAliasToPerson(ctx context.Context, repos repository.RepositoryFactory, personID int64, value string) (*entity.Alias, error) {
	if err := usecase.ValidateID(personID); err != nil {
		return nil, err
	}
	if err := validation.Struct(aliasInput{Value: value}, aliasRules); err != nil {
		return nil, err
	}

	alias := &entity.Alias{PersonID: personID, Value: value}
	if err := repos.AliasRepo().Create(ctx, alias); err != nil {
		if errors.Is(err, repository.ErrAliasExists) {
			metrics.RecordAliasConflict()

			return nil, domainerrors.NewAliasTakenError([]string{value})
		}
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrPersonNotFound, "person %d", personID)
		}

		return nil, errors.Wrap(err, "failed to add alias")
	}

	return alias, nil
}

func (srv *peopleService) attachAliases(ctx context.Context, repos repository.RepositoryFactory, person *entity.Person, values []string) error {
	for _, value := range values {
		alias, err := srv.AddAliasToPerson(ctx, repos, person.ID, value)
		if err != nil {
			return err
		}
		person.Aliases = append(person.Aliases, alias)
	}

	return nil
}

// logFailure logs unexpected errors; client errors are left to the access log.
func (srv *peopleService) logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	if domainerrors.KindOf(err) != domainerrors.KindInternal {
		return
	}
	srv.log(ctx).Error(msg, append(attrs, slog.Any("error", err))...)
}

// rejectTakenAliases fails with AliasTaken when any value belongs to someone
// other than ownerID. An ownerID of zero matches nobody.
func rejectTakenAliases(ctx context.Context, aliases repository.AliasRepository, values []string, ownerID int64) error {
	if len(values) == 0 {
		return nil
	}

	existing, err := aliases.FindByValues(ctx, values)
	if err != nil {
		return errors.Wrap(err, "failed to look up aliases")
	}

	var taken []string
	for _, alias := range existing {
		if alias.PersonID != ownerID {
			taken = append(taken, alias.Value)
		}
	}
	if len(taken) > 0 {
		metrics.RecordAliasConflict()

		return domainerrors.NewAliasTakenError(taken)
	}

	return nil
}

func translatePersonError(err error, personID int64) error {
	if errors.Is(err, repository.ErrPersonNotFound) {
		return errors.Wrapf(domainerrors.ErrPersonNotFound, "person %d", personID)
	}

	return errors.Wrap(err, "failed to load person")
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}

	return *value
}
