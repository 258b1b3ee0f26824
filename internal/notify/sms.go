package notify

import (
	"context"
	"log/slog"
	"time"
)

// SMSSimulator имитирует SMS-шлюз: ждет latency и пишет текст в лог.
type SMSSimulator struct {
	logger  *slog.Logger
	latency time.Duration
}

func NewSMSSimulator(logger *slog.Logger, latency time.Duration) *SMSSimulator {
	return &SMSSimulator{
		logger:  logger.With(slog.String("sender", "sms")),
		latency: latency,
	}
}

func (s *SMSSimulator) Send(ctx context.Context, phone string, kind Kind, params map[string]string) (bool, error) {
	content, err := Render(kind, params)
	if err != nil {
		return false, err
	}

	s.logger.Debug("sending sms", slog.String("phone", phone), slog.String("kind", string(kind)))

	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-timer.C:
	}

	s.logger.Info("sms sent", slog.String("phone", phone), slog.String("content", content))
	return true, nil
}
