package adapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/metrics"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
)

// breakerSettings opens the circuit after 5 consecutive provider failures
// and probes again after 30 seconds.
func breakerSettings(name string, log *logger.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// 4xx answers mean the provider is up.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, ErrUnauthorized)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	}
}

func newBreaker(name string, log *logger.Logger) *gobreaker.CircuitBreaker[*resty.Response] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(gobreaker.StateClosed))
	return gobreaker.NewCircuitBreaker[*resty.Response](breakerSettings(name, log))
}

// execute runs fn through cb and records the outcome.
func execute(cb *gobreaker.CircuitBreaker[*resty.Response], fn func() (*resty.Response, error)) (*resty.Response, error) {
	resp, err := cb.Execute(fn)
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(cb.Name(), "rejected").Inc()
		return nil, fmt.Errorf("%w: %w", ErrExternalAPI, ErrBreakerOpen)
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(cb.Name(), "failure").Inc()
		return resp, err
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(cb.Name(), "success").Inc()
		return resp, nil
	}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
