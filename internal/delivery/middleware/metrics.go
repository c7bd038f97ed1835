package middleware

import (
	"net/http"
	"time"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"
	"catalog/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts, latency and in-flight requests per route.
// Routes are labelled by their registered path so IDs do not explode cardinality.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		err := next(c)

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		metrics.RecordAPIRequest(c.Request().Method, route, statusOf(c, err), time.Since(start))

		return err
	}
}

// statusOf predicts the status the error handler will write for an unrendered err.
func statusOf(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
