package handler

import (
	"context"
	"net/http"
	"time"

	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthCheckTimeout = 5 * time.Second

// Health statuses.
const (
	healthOK        = "ok"
	healthError     = "error"
	healthHealthy   = "healthy"
	healthUnhealthy = "unhealthy"
)

// ComponentHealth is the state of one backing component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency"`
}

// HealthReport is the body of the health endpoint.
type HealthReport struct {
	Status     string                     `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
}

type HealthHandlerParams struct {
	fx.In

	Checkers []service.HealthChecker `group:"health_checkers"`
}

// HealthHandler reports whether the database and the session store are reachable.
type HealthHandler struct {
	checkers []service.HealthChecker
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{checkers: params.Checkers}
}

// Check runs every checker and answers 503 when any of them fails.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(requestContext(c), healthCheckTimeout)
	defer cancel()

	report := HealthReport{
		Status:     healthHealthy,
		Timestamp:  time.Now().UTC(),
		Components: make(map[string]ComponentHealth, len(h.checkers)),
	}

	for _, checker := range h.checkers {
		start := time.Now()
		err := checker.Check(ctx)

		component := ComponentHealth{Status: healthOK, Latency: time.Since(start).String()}
		if err != nil {
			component.Status = healthError
			component.Message = err.Error()
			report.Status = healthUnhealthy
		}
		report.Components[checker.Name()] = component
	}

	if report.Status != healthHealthy {
		return c.JSON(http.StatusServiceUnavailable, response.Response{
			Success: false,
			Code:    http.StatusServiceUnavailable,
			Message: "Service unavailable",
			Data:    report,
		})
	}

	return response.OK(c, report)
}
