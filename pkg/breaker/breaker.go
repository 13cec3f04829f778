package breaker

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"

	pkgLog "task-capture/pkg/log"
	"task-capture/pkg/metrics"
)

// ErrOpen is returned instead of calling a collaborator whose breaker is open.
var ErrOpen = errors.New("circuit breaker open")

// Config tunes a breaker. Zero values take gobreaker defaults except
// FailureThreshold, which defaults to 5 consecutive failures.
type Config struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// Breaker guards calls to one remote collaborator.
type Breaker struct {
	cb *gobreaker.CircuitBreaker[any]
}

// New creates a named breaker. State changes are logged and exported on
// the breaker state gauge when m is non-nil.
func New(name string, cfg Config, l pkgLog.Logger, m *metrics.Metrics) *Breaker {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warnf(context.Background(), "breaker %s: %s -> %s", name, from, to)
			if m != nil {
				m.BreakerState.WithLabelValues(name).Set(float64(to))
			}
		},
	}
	if m != nil {
		m.BreakerState.WithLabelValues(name).Set(float64(gobreaker.StateClosed))
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker[any](settings)}
}

// Execute runs fn through b. A canceled caller does not count against the
// collaborator.
func Execute[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	res, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, ErrOpen
	}
	if err != nil {
		return zero, err
	}
	v, _ := res.(T)
	return v, nil
}

// State reports the current breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
