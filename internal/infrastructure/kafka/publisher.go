// Package kafka adapts the shared producer to the domain event publisher
// port.
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/tierbank/depositcalc/internal/domain/port"
	"github.com/tierbank/depositcalc/internal/platform/events"
	"github.com/tierbank/depositcalc/internal/platform/kafka"
)

// MessageProducer is the slice of the shared producer this adapter needs.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, messages ...kafka.Message) error
}

// EventPublisher publishes domain events through a Kafka producer. Events
// are keyed by aggregate ID so all events of one calculation land on the
// same partition.
type EventPublisher struct {
	producer MessageProducer
}

func NewEventPublisher(producer MessageProducer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

var _ port.EventPublisher = (*EventPublisher)(nil)

func (p *EventPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: evt.Payload(),
			Headers: map[string]string{
				"event_id":    evt.EventID().String(),
				"event_type":  evt.EventType(),
				"occurred_at": evt.OccurredAt().Format(time.RFC3339Nano),
			},
		})
	}

	if err := p.producer.Publish(ctx, topic, messages...); err != nil {
		return fmt.Errorf("publish %d event(s) to %s: %w", len(messages), topic, err)
	}
	return nil
}
