package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameExists is returned when the username is already registered.
	ErrUsernameExists = errors.New("username already exists")
)

// UserRepository defines the persistence operations for user accounts.
// Lookups return users in any state; callers decide how inactive users are treated.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}
