// Package kafka publishes order change events to a Kafka topic with
// github.com/segmentio/kafka-go.
package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Client holds the broker list parsed from KAFKA_HOST.
type Client struct {
	Brokers []string
}

// NewClient splits a comma separated broker list, dropping blanks.
func NewClient(brokersCSV string) *Client {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &Client{Brokers: brokers}
}

// Enabled reports whether any broker is configured.
func (c *Client) Enabled() bool {
	return len(c.Brokers) > 0
}

// WriteBatchTimeout bounds how long a synchronous write waits for its batch to
// fill. Events are written one at a time.
const WriteBatchTimeout = 10 * time.Millisecond

// NewWriter returns a writer for topic. Messages with the same key land on the
// same partition.
func (c *Client) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           WriteBatchTimeout,
	}
}
