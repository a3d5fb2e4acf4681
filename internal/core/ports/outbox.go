package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	// ID is the id of the domain event.
	ID kernel.UUID
	// Name is the event name, used as the message type.
	Name string
	// AggregateID identifies the aggregate that raised the event.
	AggregateID kernel.UUID
	// Payload is the JSON encoding of the event.
	Payload []byte
	// OccurredAt is when the event was recorded.
	OccurredAt time.Time
}

// OutboxRepository reads and acknowledges stored domain events. Events are
// written by the unit of work when it commits tracked aggregates.
type OutboxRepository interface {
	// GetPending returns up to limit unpublished messages, oldest first, locked
	// so that concurrent relays do not publish the same message twice.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkProcessed stamps the message as published at the given time.
	MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the event sink.
type EventPublisher interface {
	// Publish delivers msg at least once. Consumers deduplicate by message ID.
	Publish(ctx context.Context, msg OutboxMessage) error
}
