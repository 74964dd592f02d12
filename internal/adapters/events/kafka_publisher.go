// Package events delivers significant exchange-rate changes to downstream systems.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/core/domain"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaRateEventPublisher writes one JSON message per changed currency, keyed
// by currency code so a consumer sees each currency's changes in order.
type KafkaRateEventPublisher struct {
	writer MessageWriter
}

// NewKafkaRateEventPublisher creates a publisher writing to topic on brokers.
func NewKafkaRateEventPublisher(brokers []string, topic string) *KafkaRateEventPublisher {
	return NewKafkaRateEventPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	})
}

// NewKafkaRateEventPublisherWithWriter wraps an existing writer.
func NewKafkaRateEventPublisherWithWriter(writer MessageWriter) *KafkaRateEventPublisher {
	return &KafkaRateEventPublisher{writer: writer}
}

// PublishRateChanges writes every event in one batch.
func (p *KafkaRateEventPublisher) PublishRateChanges(ctx context.Context, events []domain.RateChangedEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal rate event for %s: %w", event.CurrencyCode, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.CurrencyCode),
			Value: value,
			Time:  event.FetchedAt,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte("exchange_rate.changed")},
				{Key: "base-currency", Value: []byte(event.BaseCurrency)},
			},
		})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write %d rate events: %w", len(msgs), err)
	}
	return nil
}

// Close flushes pending messages.
func (p *KafkaRateEventPublisher) Close() error {
	return p.writer.Close()
}
