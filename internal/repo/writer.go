package repo

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/SergeyBogomolovv/royal-shop/pkg/utils"
)

type SnapshotSaver interface {
	Save(ctx context.Context, orders []entities.Order) error
}

// Writer сохраняет снимки заказов в фоне. Save не ждет записи;
// если несколько снимков пришли до записи, пишется только последний.
type Writer struct {
	logger  *slog.Logger
	saver   SnapshotSaver
	timeout time.Duration
	retry   utils.RetryConfig

	wake chan struct{}
	done chan struct{}

	// writeMu сериализует записи цикла и Flush после его остановки
	writeMu sync.Mutex

	mu      sync.Mutex
	pending []entities.Order
	queued  uint64
	written uint64
	flushed chan struct{}
}

func NewWriter(logger *slog.Logger, saver SnapshotSaver, timeout time.Duration) *Writer {
	return &Writer{
		logger:  logger.With(slog.String("repo", "writer")),
		saver:   saver,
		timeout: timeout,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 50 * time.Millisecond,
			MaxDelay:     time.Second,
			Multiplier:   2,
		},
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		flushed: make(chan struct{}),
	}
}

func (w *Writer) Save(orders []entities.Order) {
	w.mu.Lock()
	w.pending = orders
	w.queued++
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Start запускает цикл записи. После отмены ctx цикл дописывает
// последний снимок и завершается.
func (w *Writer) Start(ctx context.Context) error {
	go w.run(ctx)
	return nil
}

func (w *Writer) run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.writePending(ctx)
		case <-ctx.Done():
			w.writePending(context.WithoutCancel(ctx))
			return
		}
	}
}

func (w *Writer) writePending(ctx context.Context) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	if w.written == w.queued {
		w.mu.Unlock()
		return
	}
	orders, seq := w.pending, w.queued
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	err := utils.Retry(ctx, w.retry, func() error {
		return w.saver.Save(ctx, orders)
	})
	if err != nil {
		persistWrites.WithLabelValues("error").Inc()
		w.logger.Error("failed to persist orders", slog.Any("error", err), slog.Int("count", len(orders)))
	} else {
		persistWrites.WithLabelValues("ok").Inc()
		w.logger.Debug("orders persisted", slog.Int("count", len(orders)))
	}

	w.mu.Lock()
	w.written = seq
	close(w.flushed)
	w.flushed = make(chan struct{})
	w.mu.Unlock()
}

// Flush ждет, пока будут обработаны все снимки, переданные до вызова.
// Если цикл уже остановлен, пишет сам.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	target := w.queued
	w.mu.Unlock()

	for {
		w.mu.Lock()
		if w.written >= target {
			w.mu.Unlock()
			return nil
		}
		ch := w.flushed
		w.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		case <-w.done:
			w.writePending(context.WithoutCancel(ctx))
		}
	}
}
