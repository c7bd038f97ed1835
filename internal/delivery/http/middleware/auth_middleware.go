package middleware

import (
	"log/slog"
	"strings"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards the routes that need a logged-in user.
type AuthMiddleware struct {
	auth          usecase.AuthUsecase
	loginDisabled bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		auth:          auth,
		loginDisabled: cfg.Auth != nil && cfg.Auth.LoginDisabled,
	}
}

// Authenticate resumes the session behind the bearer token. On success the
// session travels in the request context and the request logger carries the user ID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.loginDisabled {
			return next(c)
		}

		token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		user, session, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			return errors.WithStack(err)
		}

		ctx = service.WithSession(ctx, session)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", user.ID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))
		deliverycontext.SetUserID(c, user.ID)

		return next(c)
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
	}

	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", domainerrors.ErrUnauthenticated.WithDetails("authorization header must be a bearer token")
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", domainerrors.ErrUnauthenticated.WithDetails("bearer token is empty")
	}

	return token, nil
}
