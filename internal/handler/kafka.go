package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/royal-shop/internal/config"
	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/SergeyBogomolovv/royal-shop/internal/service"
	"github.com/SergeyBogomolovv/royal-shop/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

const (
	CommandSetStock     = "set_stock"
	CommandUpdateStatus = "update_status"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command команда продавца из топика команд.
type Command struct {
	Type      string `json:"type" validate:"required,oneof=set_stock update_status"`
	ProductID string `json:"productId" validate:"required_if=Type set_stock"`
	Stock     *int   `json:"stock" validate:"required_if=Type set_stock"`
	OrderID   string `json:"orderId" validate:"required_if=Type update_status"`
	Status    string `json:"status" validate:"required_if=Type update_status"`
}

type CommandExecutor interface {
	SetStock(productID string, stock int) entities.Outcome
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (service.StatusChange, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	svc      CommandExecutor
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, svc CommandExecutor) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.CommandsTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaHandler(logger, reader, dlq, svc)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, svc CommandExecutor) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	commandsInProgress.Inc()
	defer commandsInProgress.Dec()
	start := time.Now()

	if err := h.handleCommand(ctx, m); err != nil {
		commandsFailed.Inc()
		h.logger.Error("failed to handle command", slog.Any("error", err), slog.Int64("offset", m.Offset))

		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		commandsDLQ.Inc()
	} else {
		commandsProcessed.Inc()
	}
	commandDuration.Observe(time.Since(start).Seconds())

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

// handleCommand неизвестные id не считаются ошибкой: команда
// применяется с тем же результатом, что и из консоли.
func (h *kafkaHandler) handleCommand(ctx context.Context, m kafka.Message) error {
	var cmd Command
	if err := json.Unmarshal(m.Value, &cmd); err != nil {
		return fmt.Errorf("failed to unmarshal command: %w", err)
	}
	if err := h.validate.Struct(cmd); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	switch cmd.Type {
	case CommandSetStock:
		outcome := h.svc.SetStock(cmd.ProductID, *cmd.Stock)
		h.logger.Debug("set_stock handled", slog.String("product_id", cmd.ProductID), slog.String("outcome", outcome.String()))
		return nil

	case CommandUpdateStatus:
		status, err := entities.ParseOrderStatus(cmd.Status)
		if err != nil {
			return fmt.Errorf("invalid command: %w", err)
		}
		change, err := h.svc.UpdateStatus(ctx, cmd.OrderID, status)
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		h.logger.Debug("update_status handled", slog.String("order_id", cmd.OrderID), slog.String("outcome", change.Outcome.String()))
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Type)
	}
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
