package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Command struct {
	Type      string `json:"type"`
	ProductID string `json:"productId,omitempty"`
	Stock     *int   `json:"stock,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	Status    string `json:"status,omitempty"`
}

var statuses = []string{"PENDING_PAYMENT", "PAID_VERIFYING", "PROCESSING", "SHIPPED", "COMPLETED"}

// generateCommand изредка выдает битую команду, чтобы проверить DLQ.
func generateCommand(orderIDs []string, catalogSize int) Command {
	switch n := rand.Intn(10); {
	case n == 0:
		return Command{Type: "set_stock"}
	case n < 5 || len(orderIDs) == 0:
		stock := rand.Intn(50)
		return Command{
			Type:      "set_stock",
			ProductID: fmt.Sprintf("PROD-%d", 1000+rand.Intn(catalogSize)),
			Stock:     &stock,
		}
	default:
		return Command{
			Type:    "update_status",
			OrderID: orderIDs[rand.Intn(len(orderIDs))],
			Status:  statuses[rand.Intn(len(statuses))],
		}
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka broker")
	topic := flag.String("topic", "shop-commands", "commands topic")
	catalogSize := flag.Int("catalog", 220, "catalog size")
	interval := flag.Duration("interval", 2*time.Second, "interval between commands")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(*brokers),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// id заказов берутся из аргументов: ORD-... ORD-...
	orderIDs := flag.Args()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cmd := generateCommand(orderIDs, *catalogSize)
			data, _ := json.Marshal(cmd)
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Println("failed to write command:", err)
				continue
			}
			log.Println("command sent", string(data))
		case <-ctx.Done():
			return
		}
	}
}
