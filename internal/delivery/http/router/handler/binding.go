// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"strings"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// bodyFields maps a JSON key to the error reported when its value has the wrong type.
type bodyFields map[string]*domainerrors.BaseError

// bindBody decodes the JSON body into dst. A value of the wrong type under a
// known key fails with that field's error instead of a generic 400.
func bindBody(c echo.Context, dst any, fields bodyFields) error {
	err := c.Bind(dst)
	if err == nil {
		return nil
	}

	if typeErr, ok := errors.AsType[*json.UnmarshalTypeError](err); ok {
		key := topLevelKey(typeErr.Field)
		if fieldErr, found := fields[key]; found {
			return fieldErr.WithDetails(key + " has the wrong type")
		}
	}

	// Binding failures are already 400 *echo.HTTPError values.
	return err
}

// topLevelKey turns a decoder path such as "aliases[0]" or "movie.title" into its first key.
func topLevelKey(field string) string {
	if i := strings.IndexAny(field, ".["); i >= 0 {
		return field[:i]
	}

	return field
}

func requestContext(c echo.Context) context.Context {
	return c.Request().Context()
}
