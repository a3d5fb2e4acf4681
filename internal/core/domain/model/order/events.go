package order

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

const (
	// CreatedEventName is the outbox message type of CreatedEvent.
	CreatedEventName = "order.created"
	// CompletedEventName is the outbox message type of CompletedEvent.
	CompletedEventName = "order.completed"
)

// CreatedEvent is recorded when a new order enters the system.
type CreatedEvent struct {
	kernel.BaseEvent
}

// NewCreatedEvent records the intake of o.
func NewCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{BaseEvent: kernel.NewBaseEvent(CreatedEventName, o.ID())}
}

// OrderID returns the created order id.
func (e CreatedEvent) OrderID() kernel.UUID {
	return e.AggregateID()
}

// MarshalJSON encodes the outbox payload of the event.
func (e CreatedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(newEventPayload(e.BaseEvent, nil))
}

// CompletedEvent is recorded when the courier delivers the order.
type CompletedEvent struct {
	kernel.BaseEvent
	courierID kernel.UUID
}

// NewCompletedEvent records the delivery of o by its assigned courier.
func NewCompletedEvent(o *Order) CompletedEvent {
	e := CompletedEvent{BaseEvent: kernel.NewBaseEvent(CompletedEventName, o.ID())}
	if o.courierID != nil {
		e.courierID = *o.courierID
	}
	return e
}

// OrderID returns the delivered order id.
func (e CompletedEvent) OrderID() kernel.UUID {
	return e.AggregateID()
}

// CourierID returns the courier that delivered the order.
func (e CompletedEvent) CourierID() kernel.UUID {
	return e.courierID
}

// MarshalJSON encodes the outbox payload of the event, including the courier id.
func (e CompletedEvent) MarshalJSON() ([]byte, error) {
	courierID := e.courierID
	return json.Marshal(newEventPayload(e.BaseEvent, &courierID))
}

type eventPayload struct {
	EventID    kernel.UUID  `json:"eventId"`
	OccurredAt time.Time    `json:"occurredAt"`
	OrderID    kernel.UUID  `json:"orderId"`
	CourierID  *kernel.UUID `json:"courierId,omitempty"`
}

func newEventPayload(base kernel.BaseEvent, courierID *kernel.UUID) eventPayload {
	return eventPayload{
		EventID:    base.EventID(),
		OccurredAt: base.OccurredAt(),
		OrderID:    base.AggregateID(),
		CourierID:  courierID,
	}
}
