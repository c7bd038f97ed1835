package middleware

import (
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorStatus hands the access logger a bare *echo.HTTPError carrying the status
// the error handler will write. The original error stays reachable as Internal.
// It must be registered after the access log middleware.
func ErrorStatus(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err == nil {
			return nil
		}

		//nolint:errorlint // only a bare *echo.HTTPError keeps its status in slog-echo
		if _, ok := err.(*echo.HTTPError); ok {
			return err
		}

		httpErr := echo.NewHTTPError(statusOf(c, err))
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			httpErr.Message = appErr.Message()
		} else if inner, ok := errors.AsType[*echo.HTTPError](err); ok {
			httpErr.Message = inner.Message
		}

		return httpErr.SetInternal(err)
	}
}
