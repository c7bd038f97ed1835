package middleware

import (
	"log/slog"

	"catalog/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogMiddleware logs one line per request through slog-echo.
// Successful requests are logged at debug level unless env.debug is set,
// and the health and metrics endpoints are never logged.
func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	level := slog.LevelDebug
	if cfg.Env.Debug {
		level = slog.LevelInfo
	}

	ignored := []string{"/health"}
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		ignored = append(ignored, cfg.Metrics.Path)
	}

	return slogecho.NewWithConfig(logger.With(slog.String("component", "http")), slogecho.Config{
		DefaultLevel:     level,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
		WithRequestID:    true,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath(ignored...),
		},
	})
}
