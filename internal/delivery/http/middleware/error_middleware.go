package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every error returned by a handler.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.Kind() == domainerrors.KindInternal {
			logger.Error("Request failed", slog.Any("error", err), slog.String("path", c.Path()))
		}
		m.write(c, logger, response.AppError(c, appErr))

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		if httpErr.Code == http.StatusInternalServerError && httpErr.Internal != nil {
			m.unhandled(c, logger, httpErr.Internal)

			return
		}

		message := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}
		m.write(c, logger, response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""))

		return
	}

	m.unhandled(c, logger, err)
}

func (m *ErrorMiddleware) unhandled(c echo.Context, logger *slog.Logger, err error) {
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	details := ""
	if m.debug {
		details = err.Error()
	}
	m.write(c, logger, response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), details))
}

func (m *ErrorMiddleware) write(c echo.Context, logger *slog.Logger, err error) {
	if err != nil {
		logger.Warn("Failed to write error response", slog.Any("error", err), slog.String("path", c.Path()))
	}
}
