// Package metrics holds the Prometheus collectors of the catalog service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login outcomes.
const (
	LoginSuccess  = "success"
	LoginRejected = "rejected"
	LoginError    = "error"
)

var (
	// HTTP Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_http_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// LoginAttempts counts login attempts.
	// Labels:
	//   - outcome: "success", "rejected" (bad credentials or inactive user), "error"
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	// RoleChanges counts role join rows written.
	// Labels:
	//   - role: "actor", "director", "producer"
	//   - action: "added", "removed"
	RoleChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_role_changes_total",
			Help: "Total number of role rows added or removed",
		},
		[]string{"role", "action"},
	)

	AliasConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_alias_conflicts_total",
			Help: "Total number of person writes rejected because an alias was taken",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordLogin records one login attempt with its outcome.
func RecordLogin(outcome string) {
	LoginAttempts.WithLabelValues(outcome).Inc()
}

// RecordRoleChange records a role row that was actually inserted or deleted.
func RecordRoleChange(role, action string) {
	RoleChanges.WithLabelValues(role, action).Inc()
}

// RecordAliasConflict records a rejected alias.
func RecordAliasConflict() {
	AliasConflicts.Inc()
}
