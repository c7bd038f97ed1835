package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/infra/metrics"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	sessions  service.SessionManager
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Sessions  service.SessionManager
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		sessions:  params.Sessions,
		logger:    params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetByID returns an active user.
func (srv *authService) GetByID(ctx context.Context, userID int64) (*entity.User, error) {
	if err := usecase.ValidateID(userID); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateUserError(err)
	}
	if !user.IsActive {
		return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %d is inactive", userID)
	}

	return user, nil
}

// GetByUsername returns an active user.
func (srv *authService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		return nil, domainerrors.ErrInvalidUsername.WithDetails("Username is required")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, translateUserError(err)
	}
	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user is inactive")
	}

	return user, nil
}

// Login checks the password before the active flag, so an inactive user
// with a wrong password is told the password is wrong.
func (srv *authService) Login(ctx context.Context, username, password string) (string, error) {
	if password == "" {
		return "", domainerrors.ErrInvalidPassword.WithDetails("Password is required")
	}
	if username == "" {
		return "", domainerrors.ErrInvalidUsername.WithDetails("Username is required")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		err = translateUserError(err)
		recordLogin(err)

		return "", err
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		metrics.RecordLogin(metrics.LoginRejected)
		srv.log(ctx).Warn("Login rejected", slog.String("reason", "wrong password"), slog.Int64("userID", user.ID))

		return "", domainerrors.ErrWrongPassword
	}
	if !user.IsActive {
		metrics.RecordLogin(metrics.LoginRejected)
		srv.log(ctx).Warn("Login rejected", slog.String("reason", "inactive user"), slog.Int64("userID", user.ID))

		return "", domainerrors.ErrInactiveUser
	}

	token, err := srv.sessions.Establish(ctx, user.ID)
	if err != nil {
		metrics.RecordLogin(metrics.LoginError)
		srv.log(ctx).Error("Failed to establish session", slog.Int64("userID", user.ID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to establish session")
	}

	metrics.RecordLogin(metrics.LoginSuccess)
	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return token, nil
}

// Logout ends the ambient session. Without one the session manager's
// Unauthenticated error is returned as is.
func (srv *authService) Logout(ctx context.Context) error {
	if err := srv.sessions.Terminate(ctx); err != nil {
		return err
	}

	srv.log(ctx).Debug("User logged out")

	return nil
}

// CreateOrUpdateAdmin upserts by username: a new user is created active, an
// existing one gets the new password and is reactivated.
func (srv *authService) CreateOrUpdateAdmin(ctx context.Context, input *usecase.AdminInput) (*entity.User, error) {
	if input == nil {
		input = &usecase.AdminInput{}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var admin *entity.User
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()

		existing, err := userRepo.FindByUsername(ctx, input.Username)
		if errors.Is(err, repository.ErrUserNotFound) {
			admin = &entity.User{Username: input.Username, PasswordHash: digest, IsActive: true}

			return errors.Wrap(userRepo.Create(ctx, admin), "failed to create admin")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find admin")
		}

		existing.PasswordHash = digest
		existing.IsActive = true
		admin = existing

		return errors.Wrap(userRepo.Update(ctx, existing), "failed to update admin")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to provision admin", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Admin provisioned", slog.String("username", admin.Username), slog.Int64("userID", admin.ID))

	return admin, nil
}

// Authenticate resumes the session and loads its user, who must still be active.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, *entity.Session, error) {
	session, err := srv.sessions.Resume(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrUnauthenticated.WithDetails("user no longer exists")
		}

		return nil, nil, errors.Wrap(err, "failed to load session user")
	}
	if !user.IsActive {
		return nil, nil, domainerrors.ErrUnauthenticated.WithDetails("user is inactive")
	}

	return user, session, nil
}

func translateUserError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, "user lookup")
	}

	return errors.Wrap(err, "failed to load user")
}

func recordLogin(err error) {
	if domainerrors.KindOf(err) == domainerrors.KindInternal {
		metrics.RecordLogin(metrics.LoginError)

		return
	}
	metrics.RecordLogin(metrics.LoginRejected)
}
