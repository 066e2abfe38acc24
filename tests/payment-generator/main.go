package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// PaymentEvent mirrors the message consumed by the booking service.
type PaymentEvent struct {
	EventID     string  `json:"event_id"`
	Type        string  `json:"type"`
	OrderID     string  `json:"order_id"`
	ProviderRef string  `json:"provider_ref,omitempty"`
	Amount      float64 `json:"amount"`
	Instant     bool    `json:"instant"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// lifecycle returns the events that take an accepted order to completion.
// Every few orders the payment is replayed to exercise duplicate handling.
func lifecycle(orderID string, amount float64) []PaymentEvent {
	ref := "pi_" + randomString(14)
	events := []PaymentEvent{
		{Type: "payment.deposit", OrderID: orderID, ProviderRef: "pi_" + randomString(14), Amount: amount / 2},
		{Type: "payment.succeeded", OrderID: orderID, ProviderRef: ref, Amount: amount / 2},
	}
	if rand.Intn(4) == 0 {
		events = append(events, events[1])
	}
	events = append(events, PaymentEvent{Type: "transfer.succeeded", OrderID: orderID, Instant: rand.Intn(2) == 0})

	for i := range events {
		events[i].EventID = uuid.NewString()
	}
	return events
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "payments", "payment events topic")
	orders := flag.String("orders", "ORD-000001", "comma separated accepted order ids")
	amount := flag.Float64("amount", 100, "agreed order amount")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for _, orderID := range strings.Split(*orders, ",") {
		for _, ev := range lifecycle(orderID, *amount) {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}

			data, _ := json.Marshal(ev)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(ev.OrderID), Value: data}); err != nil {
				log.Println("failed to publish event:", err)
				continue
			}
			log.Println("event published", fmt.Sprintf("%s %s", ev.Type, ev.OrderID))
		}
	}
}
