package courier

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// DefaultStoragePlaceName is the name of the place every new courier starts with.
	DefaultStoragePlaceName = "Bag"
	// DefaultStoragePlaceVolume is the capacity of the default place.
	DefaultStoragePlaceVolume = 10
)

var (
	// ErrNoSuitableStoragePlace is returned by TakeOrder when no free place fits the order.
	ErrNoSuitableStoragePlace = errors.New("no suitable storage place")

	// ErrCourierIsNotConstructed is returned when using a Courier that did not come from a constructor.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier")
)

// Courier represents a delivery worker moving over the grid.
// It is an aggregate root that owns its storage places exclusively.
//
// Key responsibilities:
//   - Managing courier identity (ID, name, speed)
//   - Moving toward a target with a per-tick step budget
//   - Storing and releasing orders in its storage places
//   - Estimating the number of ticks needed to reach a location
//
// Business rules:
//   - ID must be valid, name non-blank, speed positive and location present
//   - A new courier gets the default "Bag" place of volume 10
//   - An order goes into the first free place large enough, in insertion order
//   - Movement covers at most speed units per tick, X axis before Y axis
//
// Example usage:
//
//	loc, _ := kernel.NewLocation(1, 1)
//	c, err := courier.NewCourier(kernel.NewUUID(), "Ivan", 2, loc)
//	if err != nil {
//	    // Handle validation error
//	}
//	if ok, _ := c.CanTakeOrder(o); ok {
//	    _ = c.TakeOrder(o)
//	}
//	_ = c.Move(o.Location())
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// speed is the number of grid units covered per tick
	speed int
	// location is the current position on the grid
	location kernel.Location
	// storagePlaces are kept in insertion order
	storagePlaces []*StoragePlace
	// guard ensures the courier was built by a constructor
	guard guard.ConstructorGuard
}

// NewCourier creates a courier with the default storage place.
// A nil id, a blank name, a non-positive speed or a missing location fail
// with errs.ErrValueIsRequired.
func NewCourier(id kernel.UUID, name string, speed int, location kernel.Location) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setSpeed(speed),
		c.setLocation(location),
	); err != nil {
		return nil, err
	}

	if err := c.AddStoragePlace(DefaultStoragePlaceName, DefaultStoragePlaceVolume); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier rebuilds a courier loaded from storage. At least one storage place is required.
func RestoreCourier(
	id kernel.UUID,
	name string,
	speed int,
	location kernel.Location,
	storagePlaces []*StoragePlace,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setSpeed(speed),
		c.setLocation(location),
		c.setStoragePlaces(storagePlaces),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate returns ErrCourierIsNotConstructed for a nil or zero Courier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier name.
func (c *Courier) Name() string {
	return c.name
}

// Speed returns the number of grid units covered per tick.
func (c *Courier) Speed() int {
	return c.speed
}

// Location returns the current position of the courier.
func (c *Courier) Location() kernel.Location {
	return c.location
}

// StoragePlaces returns the places in insertion order. The slice is a copy;
// appending to it or reordering it does not affect the courier.
func (c *Courier) StoragePlaces() []*StoragePlace {
	out := make([]*StoragePlace, len(c.storagePlaces))
	copy(out, c.storagePlaces)
	return out
}

// HasFreeCapacity reports whether at least one storage place is unoccupied.
func (c *Courier) HasFreeCapacity() bool {
	for _, place := range c.storagePlaces {
		if !place.IsOccupied() {
			return true
		}
	}
	return false
}

// AddStoragePlace appends an empty place with a generated id.
// A blank name or a non-positive volume fails and leaves the courier unchanged.
func (c *Courier) AddStoragePlace(name string, volume int) error {
	place, err := NewStoragePlace(kernel.NewUUID(), name, volume)
	if err != nil {
		return err
	}

	c.storagePlaces = append(c.storagePlaces, place)
	return nil
}

// CanTakeOrder reports whether any storage place is free and large enough
// for the order. Nothing is reserved.
func (c *Courier) CanTakeOrder(o *order.Order) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, errs.NewValueIsRequiredErrorWithCause("order", err)
	}

	return c.firstFit(o.Volume()) != nil, nil
}

// TakeOrder stores the order in the first place that can hold it.
func (c *Courier) TakeOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}

	place := c.firstFit(o.Volume())
	if place == nil {
		return fmt.Errorf("%w: courier %s, order %s, volume %d", ErrNoSuitableStoragePlace, c.id, o.ID(), o.Volume())
	}

	return place.Store(o.ID(), o.Volume())
}

// CompleteOrder frees the place holding the order. It succeeds without changes
// when no place holds it.
func (c *Courier) CompleteOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}

	for _, place := range c.storagePlaces {
		if place.Holds(o.ID()) {
			return place.Clear(o.ID())
		}
	}

	return nil
}

// CalculateTimeToLocation returns the number of ticks needed to reach target,
// distance divided by speed.
func (c *Courier) CalculateTimeToLocation(target kernel.Location) (float64, error) {
	distance, err := c.location.DistanceTo(target)
	if err != nil {
		return 0, err
	}

	return float64(distance) / float64(c.speed), nil
}

// Move advances the courier at most speed grid units toward target.
// The budget is spent on the X axis first and the remainder on the Y axis,
// so from (1,1) to (10,10) at speed 5 the courier ends at (6,1).
func (c *Courier) Move(target kernel.Location) error {
	if err := target.Validate(); err != nil {
		return err
	}

	budget := c.speed

	dx := clamp(int(target.X())-int(c.location.X()), budget)
	budget -= absInt(dx)

	dy := clamp(int(target.Y())-int(c.location.Y()), budget)

	next, err := kernel.NewLocation(
		c.location.X()+kernel.Coordinate(dx), //nolint:gosec // bounded by the grid
		c.location.Y()+kernel.Coordinate(dy), //nolint:gosec // bounded by the grid
	)
	if err != nil {
		return err
	}

	c.location = next
	return nil
}

func (c *Courier) firstFit(volume int) *StoragePlace {
	for _, place := range c.storagePlaces {
		if place.CanStore(volume) == nil {
			return place
		}
	}
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *Courier) setSpeed(speed int) error {
	if speed <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("speed", fmt.Errorf("%d is not greater than 0", speed))
	}

	c.speed = speed
	return nil
}

func (c *Courier) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *Courier) setStoragePlaces(places []*StoragePlace) error {
	if len(places) == 0 {
		return errs.NewValueIsRequiredError("storagePlaces")
	}

	for _, place := range places {
		if err := place.Validate(); err != nil {
			return err
		}
	}

	c.storagePlaces = make([]*StoragePlace, len(places))
	copy(c.storagePlaces, places)
	return nil
}

// clamp limits v to [-limit, limit].
func clamp(v, limit int) int {
	return max(-limit, min(v, limit))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
