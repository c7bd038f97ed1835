package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/config"
	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, debug bool, err error) (int, response.Response) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Debug = debug
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("app error behind an http error", func(t *testing.T) {
		err := echo.NewHTTPError(http.StatusNotFound).SetInternal(errors.WithStack(domainerrors.ErrMovieNotFound))

		status, body := handle(t, false, err)
		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, body.Error)
		assert.Equal(t, "MOVIE_NOT_FOUND", body.Error.Code)
	})

	t.Run("http error keeps its code and message", func(t *testing.T) {
		err := echo.NewHTTPError(http.StatusBadRequest, "bad body").SetInternal(errors.New("unexpected EOF"))

		status, body := handle(t, false, err)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, body.Error)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
		assert.Equal(t, "bad body", body.Message)
	})

	t.Run("unknown cause hidden outside debug", func(t *testing.T) {
		err := echo.NewHTTPError(http.StatusInternalServerError).SetInternal(errors.New("disk on fire"))

		status, body := handle(t, false, err)
		assert.Equal(t, http.StatusInternalServerError, status)
		require.NotNil(t, body.Error)
		assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), body.Error.Code)
		assert.Empty(t, body.Error.Details)
	})

	t.Run("unknown cause shown in debug", func(t *testing.T) {
		status, body := handle(t, true, errors.New("disk on fire"))
		assert.Equal(t, http.StatusInternalServerError, status)
		require.NotNil(t, body.Error)
		assert.Contains(t, body.Error.Details, "disk on fire")
	})
}
