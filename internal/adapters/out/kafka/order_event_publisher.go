// Package kafka publishes committed order changes so downstream consumers
// (customer notifications, analytics) can react without polling the database.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// orderChangedMessage is the wire shape of an order change notification.
type orderChangedMessage struct {
	OrderID      string  `json:"order_id"`
	OrderCode    string  `json:"order_code"`
	CustomerID   string  `json:"customer_id"`
	Status       string  `json:"status"`
	CurrentStage string  `json:"current_stage"`
	StaffID      *string `json:"staff_id,omitempty"`
	Version      int     `json:"version"`
	OccurredAt   string  `json:"occurred_at"`
}

// SaramaOrderEventPublisher implements OrderEventPublisher on top of a Kafka
// sync producer. Messages are keyed by order ID so all changes to one order
// land on the same partition in commit order.
type SaramaOrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSaramaOrderEventPublisher connects a sync producer to the given brokers.
func NewSaramaOrderEventPublisher(brokers []string, topic string) (*SaramaOrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &SaramaOrderEventPublisher{
		producer: producer,
		topic:    topic,
	}, nil
}

// PublishOrderChanged emits the order's post-commit state.
func (p *SaramaOrderEventPublisher) PublishOrderChanged(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	message := orderChangedMessage{
		OrderID:      aggregate.ID().String(),
		OrderCode:    aggregate.OrderCode(),
		CustomerID:   aggregate.CustomerID().String(),
		Status:       aggregate.Status().String(),
		CurrentStage: aggregate.CurrentStage().String(),
		Version:      aggregate.Version(),
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if staffID := aggregate.AssignedStaff(); staffID != nil {
		s := staffID.String()
		message.StaffID = &s
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(aggregate.ID().String()),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		slog.Error("Failed to publish order change",
			"orderId", aggregate.ID().String(), "topic", p.topic, "error", err)
		return err
	}

	slog.Debug("Order change published",
		"orderId", aggregate.ID().String(), "topic", p.topic,
		"partition", partition, "offset", offset)
	return nil
}

// Close shuts down the underlying producer.
func (p *SaramaOrderEventPublisher) Close() error {
	return p.producer.Close()
}
