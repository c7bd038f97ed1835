package service

import "context"

// HealthChecker checks one backing component for the health endpoint.
type HealthChecker interface {
	// Name labels the component in the health report.
	Name() string

	// Check returns nil when the component is reachable.
	Check(ctx context.Context) error
}
