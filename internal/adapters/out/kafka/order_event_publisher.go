package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"grubdash/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// ErrDisabled is returned by NewOrderEventPublisher when no broker is configured.
var ErrDisabled = errors.New("kafka disabled")

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedMessage is the JSON value of every published message.
type OrderChangedMessage struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher implements ports.OrderEventPublisher on a Kafka topic.
// Messages are keyed by order id, so the events of one order stay ordered.
type OrderEventPublisher struct {
	writer messageWriter
}

// NewOrderEventPublisher creates a publisher writing to topic.
func NewOrderEventPublisher(client *Client, topic string) (*OrderEventPublisher, error) {
	if !client.Enabled() {
		return nil, ErrDisabled
	}
	if topic == "" {
		return nil, errors.New("kafka: order changed topic is required")
	}
	return newOrderEventPublisher(client.NewWriter(topic)), nil
}

func newOrderEventPublisher(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// Publish writes event to the topic and waits for the broker acknowledgement.
func (p *OrderEventPublisher) Publish(ctx context.Context, event order.Event) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: publish %s for order %s: %w", event.Type, event.OrderID, err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func newMessage(event order.Event) (kafka.Message, error) {
	value, err := json.Marshal(OrderChangedMessage{
		Type:       string(event.Type),
		OrderID:    event.OrderID,
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}
