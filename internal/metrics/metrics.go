// Package metrics holds the prometheus collectors of the server. They are
// registered on the default registry and exposed at GET /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "my_movies_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "my_movies_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Enrichment
	EnrichmentRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "my_movies_enrichment_runs_total",
			Help: "Total number of enrichment runs by final state",
		},
		[]string{"state"}, // "complete", "cancelled"
	)

	EnrichmentItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "my_movies_enrichment_items_total",
			Help: "Total number of processed enrichment items by outcome",
		},
		[]string{"outcome"}, // "updated", "not_found", "error"
	)

	EnrichmentRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "my_movies_enrichment_running",
			Help: "1 while an enrichment run is in progress",
		},
	)

	// Event bus
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "my_movies_events_published_total",
			Help: "Total number of events published on the bus by type",
		},
		[]string{"type"},
	)

	EventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "my_movies_events_dropped_total",
			Help: "Total number of events evicted from full subscriber buffers",
		},
	)

	EventSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "my_movies_event_subscribers",
			Help: "Current number of event bus subscribers",
		},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "my_movies_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "my_movies_circuit_breaker_requests_total",
			Help: "Total number of requests passed through a circuit breaker by result",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	// Auth
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "my_movies_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"}, // "success", "failure"
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
