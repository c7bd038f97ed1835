package impl

import (
	"context"
	"strings"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeopleService_Create(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	person, err := service.Create(ctx, &usecase.CreatePersonInput{
		FirstName: "Keanu",
		LastName:  "Reeves",
		Aliases:   []string{"The One", "John Wick"},
	})
	require.NoError(t, err)
	assert.NotZero(t, person.ID)
	assert.True(t, person.IsActive)
	assert.Equal(t, []string{"The One", "John Wick"}, person.AliasValues())

	stored, err := service.GetByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, person.AliasValues(), stored.AliasValues())
	for _, alias := range stored.Aliases {
		assert.Equal(t, person.ID, alias.PersonID)
	}
}

func TestPeopleService_CreateInactive(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	person, err := service.Create(ctx, &usecase.CreatePersonInput{
		FirstName: "Hidden",
		LastName:  "Person",
		Aliases:   []string{"Nobody Here"},
		IsActive:  ptr(false),
	})
	require.NoError(t, err)

	_, err = service.GetByID(ctx, person.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}

func TestPeopleService_CreateValidation(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreatePersonInput
		want  error
	}{
		{
			name:  "nil input",
			input: nil,
			want:  domainerrors.ErrInvalidFirstName,
		},
		{
			name:  "missing first name",
			input: &usecase.CreatePersonInput{LastName: "Reeves", Aliases: []string{"The One"}},
			want:  domainerrors.ErrInvalidFirstName,
		},
		{
			name:  "short last name",
			input: &usecase.CreatePersonInput{FirstName: "Keanu", LastName: "Re", Aliases: []string{"The One"}},
			want:  domainerrors.ErrInvalidLastName,
		},
		{
			name:  "long first name",
			input: &usecase.CreatePersonInput{FirstName: strings.Repeat("k", 256), LastName: "Reeves", Aliases: []string{"The One"}},
			want:  domainerrors.ErrInvalidFirstName,
		},
		{
			name:  "no aliases",
			input: &usecase.CreatePersonInput{FirstName: "Keanu", LastName: "Reeves"},
			want:  domainerrors.ErrInvalidAlias,
		},
		{
			name:  "empty alias list",
			input: &usecase.CreatePersonInput{FirstName: "Keanu", LastName: "Reeves", Aliases: []string{}},
			want:  domainerrors.ErrInvalidAlias,
		},
		{
			name:  "empty alias value",
			input: &usecase.CreatePersonInput{FirstName: "Keanu", LastName: "Reeves", Aliases: []string{"The One", ""}},
			want:  domainerrors.ErrInvalidAlias,
		},
		{
			name:  "duplicate aliases",
			input: &usecase.CreatePersonInput{FirstName: "Keanu", LastName: "Reeves", Aliases: []string{"The One", "The One"}},
			want:  domainerrors.ErrInvalidAlias,
		},
		{
			name:  "first failing field wins",
			input: &usecase.CreatePersonInput{FirstName: "", LastName: "", Aliases: nil},
			want:  domainerrors.ErrInvalidFirstName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	page, err := service.Search(ctx, usecase.NewSearchInput())
	require.NoError(t, err)
	assert.Zero(t, page.Total, "validation failures must not write")
}

func TestPeopleService_CreateAliasTaken(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	store.mustCreatePerson(t, "Keanu", "The One")

	_, err := service.Create(ctx, &usecase.CreatePersonInput{
		FirstName: "Laurence",
		LastName:  "Fishburne",
		Aliases:   []string{"Morpheus", "The One"},
	})
	require.ErrorIs(t, err, domainerrors.ErrAliasTaken)

	var taken *domainerrors.AliasTakenError
	require.True(t, errors.As(err, &taken))
	assert.Equal(t, []string{"The One"}, taken.Values)

	page, err := service.Search(ctx, usecase.NewSearchInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total, "the rejected person must not be stored")

	aliases, err := service.GetAliasesByValue(ctx, []string{"Morpheus"})
	require.NoError(t, err)
	assert.Empty(t, aliases)
}

func TestPeopleService_GetByID(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	_, err := service.GetByID(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentifier)

	_, err = service.GetByID(ctx, -3)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentifier)

	_, err = service.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)
}

func TestPeopleService_Update(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	person := store.mustCreatePerson(t, "Keanu", "The One")

	updated, err := service.Update(ctx, person.ID, &usecase.UpdatePersonInput{
		LastName: ptr("Reeves Jr"),
		Aliases:  []string{"The One", "John Wick"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Keanu", updated.FirstName, "omitted fields keep their values")
	assert.Equal(t, "Reeves Jr", updated.LastName)
	assert.Equal(t, []string{"The One", "John Wick"}, updated.AliasValues())

	aliases, err := service.GetAliasesByPersonID(ctx, person.ID)
	require.NoError(t, err)
	assert.Len(t, aliases, 2, "re-submitting an owned alias does not insert it again")
}

func TestPeopleService_UpdateEmptyStringsAreOmitted(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	person := store.mustCreatePerson(t, "Keanu", "The One")

	updated, err := service.Update(ctx, person.ID, &usecase.UpdatePersonInput{FirstName: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "Keanu", updated.FirstName)
}

func TestPeopleService_UpdateErrors(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	keanu := store.mustCreatePerson(t, "Keanu", "The One")
	store.mustCreatePerson(t, "Laurence", "Morpheus")

	_, err := service.Update(ctx, keanu.ID, &usecase.UpdatePersonInput{Aliases: []string{"Morpheus"}})
	assert.ErrorIs(t, err, domainerrors.ErrAliasTaken)

	_, err = service.Update(ctx, keanu.ID, &usecase.UpdatePersonInput{FirstName: ptr("Kea")})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFirstName)

	_, err = service.Update(ctx, 9999, &usecase.UpdatePersonInput{FirstName: ptr("Somebody")})
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)

	_, err = service.Update(ctx, 0, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentifier)
}

func TestPeopleService_Delete(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	person := store.mustCreatePerson(t, "Keanu", "The One")

	deleted, err := service.Delete(ctx, person.ID)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive)

	_, err = service.GetByID(ctx, person.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)

	_, err = service.Delete(ctx, person.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPersonNotFound)

	// The row still exists with its aliases.
	aliases, err := service.GetAliasesByPersonID(ctx, person.ID)
	require.NoError(t, err)
	assert.Len(t, aliases, 1)
}

func TestPeopleService_Search(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	first := store.mustCreatePerson(t, "Alpha", "Alias Alpha")
	second := store.mustCreatePerson(t, "Bravo", "Alias Bravo")
	hidden := store.mustCreatePerson(t, "Charlie", "Alias Charlie")
	_, err := service.Delete(ctx, hidden.ID)
	require.NoError(t, err)

	page, err := service.Search(ctx, usecase.SearchInput{Page: 0, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, first.ID, page.Items[0].ID)

	page, err = service.Search(ctx, usecase.SearchInput{Page: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, second.ID, page.Items[0].ID)

	for _, tt := range []struct {
		input usecase.SearchInput
		want  error
	}{
		{input: usecase.SearchInput{Page: -1, Limit: 10}, want: domainerrors.ErrInvalidPage},
		{input: usecase.SearchInput{Page: 0, Limit: 0}, want: domainerrors.ErrInvalidLimit},
		{input: usecase.SearchInput{Page: 0, Limit: 201}, want: domainerrors.ErrInvalidLimit},
	} {
		_, err := service.Search(ctx, tt.input)
		assert.ErrorIs(t, err, tt.want)
	}

	_, err = service.Search(ctx, usecase.SearchInput{Page: 0, Limit: 200})
	assert.NoError(t, err)
}

func TestPeopleService_GetAliasesByValue(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	person := store.mustCreatePerson(t, "Keanu", "The One")

	aliases, err := service.GetAliasesByValue(ctx, []string{"The One", "Unknown Alias"})
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, person.ID, aliases[0].PersonID)

	_, err = service.GetAliasesByValue(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAlias)

	_, err = service.GetAliasesByValue(ctx, []string{"The One", ""})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAlias)

	_, err = service.GetAliasesByPersonID(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentifier)
}

func TestPeopleService_AddAliasToPersonJoinsCallerTransaction(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()
	errAbort := errors.New("abort")

	person := store.mustCreatePerson(t, "Keanu", "The One")

	err := store.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		alias, err := service.AddAliasToPerson(ctx, repos, person.ID, "John Wick")
		require.NoError(t, err)
		assert.Equal(t, person.ID, alias.PersonID)

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	aliases, err := service.GetAliasesByPersonID(ctx, person.ID)
	require.NoError(t, err)
	assert.Len(t, aliases, 1, "the caller rolled back")

	err = store.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := service.AddAliasToPerson(ctx, repos, person.ID, "Tiny")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAlias)

		_, err = service.AddAliasToPerson(ctx, repos, 0, "Valid Alias")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentifier)

		_, err = service.AddAliasToPerson(ctx, repos, person.ID, "The One")
		assert.ErrorIs(t, err, domainerrors.ErrAliasTaken)

		return nil
	})
	require.NoError(t, err)
}

func TestPeopleService_AliasIndexViolationRollsBackPerson(t *testing.T) {
	store := newTestStore(t)
	service := store.peopleService()
	ctx := context.Background()

	store.mustCreatePerson(t, "Keanu", "The One")

	var partial *entity.Person
	err := store.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		partial = &entity.Person{FirstName: "Thomas", LastName: "Anderson", IsActive: true}
		require.NoError(t, repos.PersonRepo().Create(ctx, partial))

		_, err := service.AddAliasToPerson(ctx, repos, partial.ID, "Mr Anderson")
		require.NoError(t, err)

		_, err = service.AddAliasToPerson(ctx, repos, partial.ID, "The One")

		return err
	})
	require.ErrorIs(t, err, domainerrors.ErrAliasTaken)
	assert.EqualError(t, errors.Cause(err), "Alias already taken: The One")

	appErr, ok := errors.Cause(err).(domainerrors.AppError) //nolint:errorlint
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindConflict, appErr.Kind())

	_, err = service.GetByID(ctx, partial.ID)
	require.ErrorIs(t, err, domainerrors.ErrPersonNotFound)

	page, err := service.Search(ctx, usecase.NewSearchInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	aliases, err := service.GetAliasesByValue(ctx, []string{"Mr Anderson"})
	require.NoError(t, err)
	assert.Empty(t, aliases)
}
