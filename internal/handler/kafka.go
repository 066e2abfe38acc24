package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/booking-service/internal/config"
	"github.com/SergeyBogomolovv/booking-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type PaymentEventHandler interface {
	HandleEvent(ctx context.Context, ev entities.PaymentEvent) error
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	payments PaymentEventHandler
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, payments PaymentEventHandler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		payments: payments,
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

		if err := h.HandleMessage(ctx, m); err != nil {
			h.logger.Error("failed to handle payment event", slog.Any("error", err), slog.Int64("offset", m.Offset))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// HandleMessage decodes and applies one payment event. An event whose order
// has already moved past it is a redelivery and is not an error.
func (h *kafkaHandler) HandleMessage(ctx context.Context, m kafka.Message) error {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()
	start := time.Now()
	defer func() { eventProcessingDuration.Observe(time.Since(start).Seconds()) }()

	ev, err := h.decode(m)
	if err != nil {
		eventsFailed.Inc()
		return err
	}

	err = h.payments.HandleEvent(ctx, PaymentEventJSONToEntity(ev))
	switch {
	case errors.Is(err, entities.ErrEventApplied):
		eventsDuplicate.Inc()
		h.logger.Warn("payment event already applied",
			slog.String("event_id", ev.EventID),
			slog.String("order_id", ev.OrderID),
			slog.String("type", ev.Type),
		)
		return nil
	case err != nil:
		eventsFailed.Inc()
		return fmt.Errorf("failed to apply event %s: %w", ev.EventID, err)
	}

	eventsProcessed.WithLabelValues(ev.Type).Inc()
	return nil
}

func (h *kafkaHandler) decode(m kafka.Message) (PaymentEvent, error) {
	var ev PaymentEvent
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		return PaymentEvent{}, fmt.Errorf("failed to unmarshal payment event: %w", err)
	}
	if err := h.validate.Struct(ev); err != nil {
		return PaymentEvent{}, fmt.Errorf("invalid payment event: %w", err)
	}
	return ev, nil
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
