package http

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// goccyJSONSerializer is echo's JSON codec backed by goccy/go-json.
type goccyJSONSerializer struct{}

// Serialize encodes i into the response body.
func (goccyJSONSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}

	return enc.Encode(i)
}

// Deserialize decodes the request body into i. Decoding failures become 400s
// that keep the decoder error as their internal cause.
func (goccyJSONSerializer) Deserialize(c echo.Context, i any) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)

	switch e := err.(type) {
	case nil:
		return nil
	case *json.UnmarshalTypeError:
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Unmarshal type error: expected=%v, got=%v, field=%v", e.Type, e.Value, e.Field)).SetInternal(err)
	case *json.SyntaxError:
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Syntax error: offset=%v, error=%v", e.Offset, e.Error())).SetInternal(err)
	default:
		return err
	}
}
