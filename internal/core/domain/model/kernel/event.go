package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Events are collected on the
// aggregate and drained by the persistence layer when the transaction commits.
type DomainEvent interface {
	// EventID uniquely identifies this occurrence of the event.
	EventID() UUID
	// EventName is the stable name used as the outbox message type.
	EventName() string
	// OccurredAt is the UTC time the aggregate recorded the event.
	OccurredAt() time.Time
	// AggregateID identifies the aggregate that raised the event.
	AggregateID() UUID
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	// DomainEvents returns the events recorded since the last clear, oldest first.
	DomainEvents() []DomainEvent
	// ClearDomainEvents drops the recorded events once they have been persisted.
	ClearDomainEvents()
}

// BaseEvent carries the fields common to every domain event and is meant to be embedded.
type BaseEvent struct {
	id          UUID
	name        string
	occurredAt  time.Time
	aggregateID UUID
}

// NewBaseEvent stamps a new event of the given name with a fresh id and the current UTC time.
func NewBaseEvent(name string, aggregateID UUID) BaseEvent {
	return BaseEvent{
		id:          NewUUID(),
		name:        name,
		occurredAt:  time.Now().UTC(),
		aggregateID: aggregateID,
	}
}

// EventID returns the identifier of this event occurrence.
func (e BaseEvent) EventID() UUID { return e.id }

// EventName returns the name the event was created with.
func (e BaseEvent) EventName() string { return e.name }

// OccurredAt returns the UTC creation time of the event.
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }

// AggregateID returns the identifier of the aggregate that raised the event.
func (e BaseEvent) AggregateID() UUID { return e.aggregateID }
