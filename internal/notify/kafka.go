package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Event сообщение в топике уведомлений.
type Event struct {
	ID        string            `json:"id"`
	Phone     string            `json:"phone"`
	Kind      Kind              `json:"kind"`
	Params    map[string]string `json:"params"`
	Content   string            `json:"content"`
	Timestamp int64             `json:"timestamp"`
}

// KafkaSender публикует уведомления для внешнего SMS-шлюза.
// Ключ сообщения - телефон, чтобы уведомления одного покупателя шли по порядку.
type KafkaSender struct {
	writer MessageWriter
	now    func() time.Time
}

func NewKafkaSender(writer MessageWriter) *KafkaSender {
	return &KafkaSender{writer: writer, now: time.Now}
}

// NewKafkaWriter писатель в топик уведомлений.
func NewKafkaWriter(brokers []string, topic string, batchTimeout time.Duration) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	}
}

func (s *KafkaSender) Send(ctx context.Context, phone string, kind Kind, params map[string]string) (bool, error) {
	content, err := Render(kind, params)
	if err != nil {
		return false, err
	}

	event := Event{
		ID:        uuid.NewString(),
		Phone:     phone,
		Kind:      kind,
		Params:    params,
		Content:   content,
		Timestamp: s.now().UnixMilli(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return false, fmt.Errorf("failed to marshal notification: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(phone),
		Value: data,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(kind)},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return false, fmt.Errorf("failed to publish notification: %w", err)
	}
	return true, nil
}
