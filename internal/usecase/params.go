// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"strconv"
	"strings"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/validation"
)

// Search defaults and bounds.
const (
	DefaultPage  = 0
	DefaultLimit = 50
	MaxLimit     = 200
)

// SearchInput selects one page of an active listing. Pages are 0-indexed.
type SearchInput struct {
	Page  int `validate:"min=0"`
	Limit int `validate:"min=1,max=200"`
}

var searchRules = validation.Rules{
	"Page":  domainerrors.ErrInvalidPage,
	"Limit": domainerrors.ErrInvalidLimit,
}

// NewSearchInput returns the default first page.
func NewSearchInput() SearchInput {
	return SearchInput{Page: DefaultPage, Limit: DefaultLimit}
}

// Validate checks the page bounds.
func (in SearchInput) Validate() error {
	return validation.Struct(in, searchRules)
}

// Pagination converts the input into the repository pagination.
func (in SearchInput) Pagination() repository.Pagination {
	return repository.Pagination{Page: in.Page, Limit: in.Limit}
}

// Page is one page of a listing.
type Page[T any] struct {
	Items []T
	Page  int
	Limit int
	Total int64
}

// ParseID parses a path or query identifier. Identifiers are positive decimal integers.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !isDigits(raw) {
		return 0, domainerrors.ErrInvalidIdentifier.WithDetails("identifier must be a positive integer")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidIdentifier.WithDetails("identifier must be a positive integer")
	}

	return id, nil
}

// ParseSearch parses raw page and limit values, applying defaults to empty ones.
// Non-integer values fail with the matching field error; bounds are checked by Validate.
func ParseSearch(rawPage, rawLimit string) (SearchInput, error) {
	input := NewSearchInput()

	if rawPage = strings.TrimSpace(rawPage); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil {
			return input, domainerrors.ErrInvalidPage.WithDetails("page must be an integer")
		}
		input.Page = page
	}

	if rawLimit = strings.TrimSpace(rawLimit); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return input, domainerrors.ErrInvalidLimit.WithDetails("limit must be an integer")
		}
		input.Limit = limit
	}

	return input, nil
}

// ValidateID rejects identifiers that storage can never have assigned.
func ValidateID(id int64) error {
	if id <= 0 {
		return domainerrors.ErrInvalidIdentifier.WithDetails("identifier must be a positive integer")
	}

	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
