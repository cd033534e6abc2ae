package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/IBM/sarama"
)

// Kafka topics for invoice lifecycle events
const (
	TopicInvoiceCreated = "invoice.created"
	TopicInvoiceUpdated = "invoice.updated"
	TopicInvoiceDeleted = "invoice.deleted"
)

// InvoiceEvent is the payload published after a successful invoice mutation.
type InvoiceEvent struct {
	ID         string               `json:"id"`
	CustomerID string               `json:"customer_id,omitempty"`
	Amount     int64                `json:"amount,omitempty"`
	Status     domain.InvoiceStatus `json:"status,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
}

// Producer publishes invoice lifecycle events. Publishing is best-effort:
// the command layer logs failures and never fails a command on them.
type Producer interface {
	PublishInvoiceCreated(ctx context.Context, invoice domain.Invoice) error
	PublishInvoiceUpdated(ctx context.Context, invoice domain.Invoice) error
	PublishInvoiceDeleted(ctx context.Context, id string) error
	Close() error
}

type kafkaInvoiceProducer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
}

// NewKafkaProducer creates a producer connected to the given brokers.
func NewKafkaProducer(brokers []string, log *logger.Logger) (Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are not configured")
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Infow("Kafka producer initialized", "brokers", brokers)
	return &kafkaInvoiceProducer{
		producer: producer,
		log:      log,
	}, nil
}

func (p *kafkaInvoiceProducer) PublishInvoiceCreated(ctx context.Context, invoice domain.Invoice) error {
	return p.publishEvent(ctx, TopicInvoiceCreated, InvoiceEvent{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     invoice.Amount,
		Status:     invoice.Status,
		Timestamp:  time.Now(),
	})
}

func (p *kafkaInvoiceProducer) PublishInvoiceUpdated(ctx context.Context, invoice domain.Invoice) error {
	return p.publishEvent(ctx, TopicInvoiceUpdated, InvoiceEvent{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     invoice.Amount,
		Status:     invoice.Status,
		Timestamp:  time.Now(),
	})
}

func (p *kafkaInvoiceProducer) PublishInvoiceDeleted(ctx context.Context, id string) error {
	return p.publishEvent(ctx, TopicInvoiceDeleted, InvoiceEvent{
		ID:        id,
		Timestamp: time.Now(),
	})
}

// publishEvent marshals the event and sends it, keyed by invoice id so all
// events for one invoice land in the same partition.
func (p *kafkaInvoiceProducer) publishEvent(_ context.Context, topic string, event InvoiceEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal invoice event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.ID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event_type"),
				Value: []byte(topic),
			},
		},
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish invoice event: %w", err)
	}

	p.log.Infow("Published invoice event", "topic", topic, "invoiceID", event.ID,
		"partition", partition, "offset", offset)
	return nil
}

func (p *kafkaInvoiceProducer) Close() error {
	return p.producer.Close()
}

// NoopProducer discards events. Used when Kafka is disabled.
type NoopProducer struct{}

func (NoopProducer) PublishInvoiceCreated(context.Context, domain.Invoice) error { return nil }
func (NoopProducer) PublishInvoiceUpdated(context.Context, domain.Invoice) error { return nil }
func (NoopProducer) PublishInvoiceDeleted(context.Context, string) error         { return nil }
func (NoopProducer) Close() error                                                { return nil }
