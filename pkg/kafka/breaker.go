package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrBreakerOpen is returned when the breaker rejects a publish.
var ErrBreakerOpen = gobreaker.ErrOpenState

// BreakerConfig configures the circuit breaker around a Publisher.
type BreakerConfig struct {
	Name string
	// MaxRequests allowed while half-open.
	MaxRequests uint32
	// Interval clears counts while closed. 0 never clears.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// FailureRatio trips the breaker once MinRequests have been seen.
	FailureRatio float64
	MinRequests  uint32
}

// DefaultBreakerConfig returns a breaker that opens after half of at least
// five publishes fail and probes again after 30s.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// BreakingPublisher short-circuits publishing while the broker is failing,
// so a Kafka outage costs callers nothing but a log line.
type BreakingPublisher struct {
	next    Publisher
	breaker *gobreaker.CircuitBreaker[struct{}]
	name    string
	logger  *slog.Logger
}

var _ Publisher = (*BreakingPublisher)(nil)

// NewBreakingPublisher wraps next with a circuit breaker.
func NewBreakingPublisher(next Publisher, cfg BreakerConfig, logger *slog.Logger) *BreakingPublisher {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		// A cancelled caller says nothing about broker health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("publish breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			BreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	}

	BreakerState.WithLabelValues(cfg.Name).Set(0)

	return &BreakingPublisher{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
		name:    cfg.Name,
		logger:  logger,
	}
}

// Publish forwards to the wrapped publisher unless the breaker is open.
func (b *BreakingPublisher) Publish(ctx context.Context, topic string, event *Event) error {
	_, err := b.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Publish(ctx, topic, event)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		BreakerRejections.WithLabelValues(b.name).Inc()
		ProducerPublishErrors.WithLabelValues(topic).Inc()
	}
	return err
}

// State reports the current breaker state.
func (b *BreakingPublisher) State() gobreaker.State {
	return b.breaker.State()
}
