// Package events defines the contract between domain events and the
// message-broker infrastructure.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is what the publisher needs from an event: a unique ID for
// consumer-side deduplication, routing metadata for message headers, and
// the serialized body. Concrete events live in the domain layer and
// implement this directly.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
	Payload() []byte
}
