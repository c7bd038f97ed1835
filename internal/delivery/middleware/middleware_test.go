package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"
	"catalog/internal/infra/metrics"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	t.Run("keeps the client request ID", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var seen string
		err := mw.Process(func(c echo.Context) error {
			seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates an ID when absent", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), deliverycontext.GetRequestID(c))
	})
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("3f2a-client_id.1"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID("line\nbreak"))
	assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}

func TestMetricsRecordsRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Metrics)
	e.GET("/api/v1/movies/:id", func(c echo.Context) error {
		return errors.Wrap(domainerrors.ErrMovieNotFound, "lookup")
	})

	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/movies/:id", "404"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/7", nil))

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/movies/:id", "404"))
	assert.InDelta(t, 1, after-before, 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.APIActiveRequests), 0)
}

type accessLogLine struct {
	Level    string `json:"level"`
	Response struct {
		Status int `json:"status"`
	} `json:"response"`
}

func TestErrorStatusKeepsStatusInAccessLog(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		level  string
	}{
		{"domain not found", errors.WithStack(domainerrors.ErrMovieNotFound), http.StatusNotFound, "WARN"},
		{"alias conflict", errors.WithStack(domainerrors.NewAliasTakenError([]string{"Neo"})), http.StatusConflict, "WARN"},
		{"wrapped bind error", errors.WithStack(echo.NewHTTPError(http.StatusBadRequest, "bad body")), http.StatusBadRequest, "WARN"},
		{"bare http error", echo.NewHTTPError(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge, "WARN"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = true

			e := echo.New()
			e.Use(NewAccessLogMiddleware(logger, cfg))
			e.Use(ErrorStatus)
			e.GET("/api/v1/movies/:id", func(echo.Context) error { return tc.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/7", nil))

			assert.Equal(t, tc.status, rec.Code)

			var line accessLogLine
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
			assert.Equal(t, tc.status, line.Response.Status)
			assert.Equal(t, tc.level, line.Level)
		})
	}
}

func TestErrorStatusKeepsCause(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := ErrorStatus(func(echo.Context) error {
		return errors.Wrap(domainerrors.ErrPersonNotFound, "lookup")
	})(c)

	httpErr, ok := err.(*echo.HTTPError) //nolint:errorlint
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ErrPersonNotFound.ErrorCode(), appErr.ErrorCode())
}
