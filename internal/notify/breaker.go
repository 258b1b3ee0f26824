package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

type BreakerConfig struct {
	Name     string
	Failures uint32
	Timeout  time.Duration
}

// Breaker перестает обращаться к отправителю после Failures
// ошибок подряд и пробует снова через Timeout.
type Breaker struct {
	sender Sender
	cb     *gobreaker.CircuitBreaker[bool]
}

func NewBreaker(logger *slog.Logger, sender Sender, cfg BreakerConfig) *Breaker {
	logger = logger.With(slog.String("breaker", cfg.Name))
	failures := max(cfg.Failures, 1)

	return &Breaker{
		sender: sender,
		cb: gobreaker.NewCircuitBreaker[bool](gobreaker.Settings{
			Name:        cfg.Name,
			MaxRequests: 1,
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				breakerState.WithLabelValues(name).Set(float64(to))
				logger.Warn("breaker state changed", slog.String("from", from.String()), slog.String("to", to.String()))
			},
		}),
	}
}

func (b *Breaker) Send(ctx context.Context, phone string, kind Kind, params map[string]string) (bool, error) {
	return b.cb.Execute(func() (bool, error) {
		ok, err := b.sender.Send(ctx, phone, kind, params)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, ErrNotDelivered
		}
		return true, nil
	})
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
