// Package kafka publishes order lifecycle events to a Kafka topic. Events
// are keyed by (user_id, order_id) so all transitions of one order land in
// the same partition in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shopbot/internal/core/domain/model/order"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// OrderChangedEvent is the wire format for order lifecycle notifications.
// EventID makes redeliveries detectable by consumers.
type OrderChangedEvent struct {
	EventID     string     `json:"event_id"`
	UserID      int64      `json:"user_id"`
	OrderID     string     `json:"order_id"`
	ProductID   string     `json:"product_id"`
	ProductName string     `json:"product_name"`
	Quantity    int        `json:"quantity"`
	Total       int64      `json:"total"`
	Status      string     `json:"status"`
	CourierID   *int64     `json:"courier_id,omitempty"`
	Commission  *int64     `json:"commission,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// SaramaOrderEventPublisher implements OrderEventPublisher on a synchronous
// Kafka producer.
type SaramaOrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewSaramaOrderEventPublisher connects a synchronous producer to the given
// brokers. The caller owns the returned publisher and must Close it.
func NewSaramaOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*SaramaOrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer: %w", err)
	}

	return &SaramaOrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka"),
	}, nil
}

// PublishOrderChanged serializes the order's current state and sends it to
// the topic.
func (p *SaramaOrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := OrderChangedEvent{
		EventID:     uuid.NewString(),
		UserID:      aggregate.UserID(),
		OrderID:     aggregate.ID(),
		ProductID:   aggregate.ProductID(),
		ProductName: aggregate.ProductName(),
		Quantity:    aggregate.Quantity(),
		Total:       aggregate.Total(),
		Status:      aggregate.Status().String(),
		CourierID:   aggregate.Courier(),
		Commission:  aggregate.FrozenCommission(),
		OccurredAt:  time.Now().UTC(),
		DeliveredAt: aggregate.DeliveredAt(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d/%s", event.UserID, event.OrderID)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send order event: %w", err)
	}

	p.logger.DebugContext(ctx, "order event published",
		"order_id", event.OrderID,
		"status", event.Status,
		"partition", partition,
		"offset", offset,
	)

	return nil
}

// Close shuts down the underlying producer.
func (p *SaramaOrderEventPublisher) Close() error {
	return p.producer.Close()
}
