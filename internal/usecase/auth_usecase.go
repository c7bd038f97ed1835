package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/validation"
)

// AdminInput defines the credentials of the provisioned administrator.
type AdminInput struct {
	Username string `validate:"required,min=5,max=255"`
	Password string `validate:"required,min=5,max=255"`
}

var adminRules = validation.Rules{
	"Username": domainerrors.ErrInvalidUsername,
	"Password": domainerrors.ErrInvalidPassword,
}

// Validate checks both credentials.
func (in *AdminInput) Validate() error {
	return validation.Struct(in, adminRules)
}

// AuthUsecase defines the login session lifecycle and user lookups.
type AuthUsecase interface {
	GetByID(ctx context.Context, userID int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Login verifies the credentials and returns a session token.
	// Checks run in order: password present, username present, user exists,
	// password matches, user active.
	Login(ctx context.Context, username, password string) (string, error)

	// Logout ends the session carried by ctx.
	Logout(ctx context.Context) error

	// CreateOrUpdateAdmin creates the user or resets its password, by username.
	CreateOrUpdateAdmin(ctx context.Context, input *AdminInput) (*entity.User, error)

	// Authenticate resumes the session behind token and resolves its active user.
	Authenticate(ctx context.Context, token string) (*entity.User, *entity.Session, error)
}
