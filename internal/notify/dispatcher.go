package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Delivery результат одной отправки. Завершается независимо от
// запроса, который ее породил.
type Delivery struct {
	Phone string
	Kind  Kind

	done chan struct{}
	ok   bool
	err  error
}

func (d *Delivery) Done() <-chan struct{} {
	return d.done
}

// Result ждет завершения отправки.
func (d *Delivery) Result() (bool, error) {
	<-d.done
	return d.ok, d.err
}

// Dispatcher отправляет уведомления в фоне и отслеживает незавершенные.
type Dispatcher struct {
	logger  *slog.Logger
	sender  Sender
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(logger *slog.Logger, sender Sender, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		logger:  logger.With(slog.String("service", "notify")),
		sender:  sender,
		timeout: timeout,
	}
}

// Dispatch не ждет отправки. Отмена ctx не прерывает уже начатую отправку.
func (d *Dispatcher) Dispatch(ctx context.Context, phone string, kind Kind, params map[string]string) *Delivery {
	delivery := &Delivery{Phone: phone, Kind: kind, done: make(chan struct{})}
	ctx = context.WithoutCancel(ctx)

	notificationsInFlight.Inc()
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer notificationsInFlight.Dec()
		defer close(delivery.done)

		if d.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.timeout)
			defer cancel()
		}

		delivery.ok, delivery.err = d.sender.Send(ctx, phone, kind, params)
		d.report(delivery)
	}()

	return delivery
}

func (d *Dispatcher) report(delivery *Delivery) {
	logger := d.logger.With(slog.String("kind", string(delivery.Kind)), slog.String("phone", delivery.Phone))

	switch {
	case delivery.err != nil:
		notificationsSent.WithLabelValues(string(delivery.Kind), "error").Inc()
		logger.Error("failed to send notification", slog.Any("error", delivery.err))
	case !delivery.ok:
		notificationsSent.WithLabelValues(string(delivery.Kind), "rejected").Inc()
		logger.Warn("notification rejected")
	default:
		notificationsSent.WithLabelValues(string(delivery.Kind), "ok").Inc()
		logger.Debug("notification sent")
	}
}

// Wait ждет все начатые отправки или отмену ctx.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
