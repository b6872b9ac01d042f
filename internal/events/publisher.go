package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

type Type string

const (
	OrderCreated Type = "order.created"
	OrderPaid    Type = "order.paid"
)

// OrderEvent сообщение в топике событий заказов
type OrderEvent struct {
	Type          Type       `json:"type"`
	OrderID       string     `json:"order_id"`
	Email         string     `json:"email"`
	Total         string     `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	IsPaid        bool       `json:"is_paid"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

func NewOrderEvent(t Type, o entities.Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:          t,
		OrderID:       o.ID,
		Email:         o.Email,
		Total:         o.Total.StringFixed(2),
		PaymentMethod: o.PaymentMethod,
		IsPaid:        o.IsPaid,
		PaidAt:        o.PaidAt,
		OccurredAt:    at,
	}
}

type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.EventsTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish ключом сообщения служит id заказа, чтобы события одного заказа шли в одну партицию.
func (p *kafkaPublisher) Publish(ctx context.Context, event OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.DebugContext(ctx, "event published", slog.String("type", string(event.Type)), slog.String("order_id", event.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher используется, когда kafka выключена.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, OrderEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
