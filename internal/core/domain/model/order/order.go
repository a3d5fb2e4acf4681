package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderAlreadyAssigned is returned by Assign when the order has left the Created status.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned")

	// ErrOrderNotAssigned is returned by Complete unless the order is assigned to a courier.
	ErrOrderNotAssigned = errors.New("order is not assigned")

	// ErrOrderIsNotConstructed is returned when using an Order that did not come from a constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder")
)

// Order represents a single delivery request.
// It is an aggregate root that references its courier by id only; the courier
// owns the storage place that physically holds the order.
//
// Key responsibilities:
//   - Managing order identity, destination and volume
//   - Enforcing the Created -> Assigned -> Completed lifecycle
//   - Recording CreatedEvent and CompletedEvent for the outbox
//
// Business rules:
//   - ID must be valid, location present and volume positive
//   - Assign succeeds only from Created and stores the courier id
//   - Complete succeeds only from Assigned
//   - Restored orders record no events
//
// Example usage:
//
//	loc, _ := kernel.NewLocation(5, 5)
//	o, err := order.NewOrder(kernel.NewUUID(), loc, 3)
//	if err != nil {
//	    // Handle validation error
//	}
//	if err := o.Assign(courierID); err != nil {
//	    // Already assigned
//	}
//	_ = o.Complete() // records CompletedEvent
type Order struct {
	// id uniquely identifies the order
	id kernel.UUID
	// courierID is nil while the order is Created
	courierID *kernel.UUID
	// location is the delivery destination
	location kernel.Location
	// volume is the space the order takes in a storage place
	volume int
	// status is the lifecycle stage
	status Status
	// events are recorded since the last ClearDomainEvents
	events []kernel.DomainEvent
	// guard ensures the order was built by a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates an order in the Created status and records CreatedEvent.
// A nil id, a missing location or a non-positive volume fail with errs.ErrValueIsRequired.
func NewOrder(id kernel.UUID, location kernel.Location, volume int) (*Order, error) {
	o := &Order{
		status: StatusCreated,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setLocation(location),
		o.setVolume(volume),
	); err != nil {
		return nil, err
	}

	o.raise(NewCreatedEvent(o))
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. No events are recorded.
func RestoreOrder(id kernel.UUID, location kernel.Location, volume int, status Status, courierID *kernel.UUID) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setLocation(location),
		o.setVolume(volume),
		o.setStatus(status, courierID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate returns ErrOrderIsNotConstructed for a nil or zero Order.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Location returns the delivery destination.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Volume returns the space the order takes.
func (o *Order) Volume() int {
	return o.volume
}

// Status returns the current lifecycle stage.
func (o *Order) Status() Status {
	return o.status
}

// CourierID returns a copy of the assigned courier id, nil while the order is Created.
func (o *Order) CourierID() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// Assign links the order to a courier and moves it to Assigned.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier", err)
	}

	next, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = next
	o.courierID = &courierID
	return nil
}

// Complete moves an assigned order to Completed and records CompletedEvent.
func (o *Order) Complete() error {
	if o.courierID == nil {
		return fmt.Errorf("%w: order %s has no courier", ErrOrderNotAssigned, o.id)
	}

	next, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = next
	o.raise(NewCompletedEvent(o))
	return nil
}

// DomainEvents returns a copy of the recorded events, oldest first.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	out := make([]kernel.DomainEvent, len(o.events))
	copy(out, o.events)
	return out
}

// ClearDomainEvents drops the recorded events.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(event kernel.DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("volume", fmt.Errorf("%d is not greater than 0", volume))
	}
	o.volume = volume
	return nil
}

func (o *Order) setStatus(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}
	if err := status.validateCourier(courierID != nil); err != nil {
		return err
	}

	o.status = status
	if courierID != nil {
		id := *courierID
		o.courierID = &id
	}
	return nil
}
