package courier

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrInvalidVolume is returned for a non-positive volume or one that exceeds the place capacity.
	ErrInvalidVolume = errors.New("volume is invalid")

	// ErrStoragePlaceIsOccupied is returned when the place already holds an order.
	ErrStoragePlaceIsOccupied = errors.New("storage place is occupied")

	// ErrOrderNotStoredInThisPlace is returned by Clear when the place is empty
	// or holds a different order.
	ErrOrderNotStoredInThisPlace = errors.New("order is not stored in this place")

	// ErrStoragePlaceIsNotConstructed is returned when using a StoragePlace that did not come from a constructor.
	ErrStoragePlaceIsNotConstructed = errors.New("StoragePlace must be created via NewStoragePlace")
)

// StoragePlace represents a single capacity slot of a courier, such as a bag or a trunk.
// It is an entity owned by Courier and is only mutated through the courier's operations.
//
// Key business rules:
//   - Must be constructed through NewStoragePlace or RestoreStoragePlace
//   - Holds at most one order at a time
//   - The stored order volume must be positive and not exceed the total volume
//   - Only the order that occupies the place can clear it
//
// Example usage:
//
//	place, err := courier.NewStoragePlace(kernel.NewUUID(), "Trunk", 20)
//	if err != nil {
//	    return err
//	}
//	if err := place.CanStore(5); err == nil {
//	    err = place.Store(orderID, 5)
//	}
type StoragePlace struct {
	// id uniquely identifies the place
	id kernel.UUID
	// name is a human-readable label
	name string
	// totalVolume is the largest order volume the place accepts
	totalVolume int
	// orderID points to the stored order, nil when the place is free
	orderID *kernel.UUID
	// guard ensures the place was built by a constructor
	guard guard.ConstructorGuard
}

// NewStoragePlace creates an empty slot.
// A blank name fails with errs.ErrValueIsInvalid, a non-positive volume with ErrInvalidVolume.
func NewStoragePlace(id kernel.UUID, name string, totalVolume int) (*StoragePlace, error) {
	place := &StoragePlace{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(place.setID(id), place.setName(name), place.setTotalVolume(totalVolume)); err != nil {
		return nil, err
	}

	return place, nil
}

// RestoreStoragePlace rebuilds a slot loaded from storage, occupied when orderID is not nil.
func RestoreStoragePlace(id kernel.UUID, name string, totalVolume int, orderID *kernel.UUID) (*StoragePlace, error) {
	place := &StoragePlace{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		place.setID(id),
		place.setName(name),
		place.setTotalVolume(totalVolume),
		place.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate returns ErrStoragePlaceIsNotConstructed for a nil or zero StoragePlace.
func (s *StoragePlace) Validate() error {
	if s == nil {
		return ErrStoragePlaceIsNotConstructed
	}
	return s.guard.Validate(ErrStoragePlaceIsNotConstructed)
}

// ID returns the place identifier.
func (s *StoragePlace) ID() kernel.UUID {
	return s.id
}

// Name returns the place label.
func (s *StoragePlace) Name() string {
	return s.name
}

// TotalVolume returns the capacity of the place.
func (s *StoragePlace) TotalVolume() int {
	return s.totalVolume
}

// OrderID returns a copy of the occupying order id, or nil when the place is free.
func (s *StoragePlace) OrderID() *kernel.UUID {
	if s.orderID == nil {
		return nil
	}
	id := *s.orderID
	return &id
}

// IsOccupied reports whether an order is stored in the place.
func (s *StoragePlace) IsOccupied() bool {
	return s.orderID != nil
}

// Holds reports whether the place is occupied by the given order.
func (s *StoragePlace) Holds(orderID kernel.UUID) bool {
	return s.orderID != nil && s.orderID.IsEqual(orderID)
}

// CanStore is a pure capacity check. It fails with ErrInvalidVolume when volume is
// not positive or larger than the place, and with ErrStoragePlaceIsOccupied when
// an order is already stored.
func (s *StoragePlace) CanStore(volume int) error {
	if volume <= 0 {
		return fmt.Errorf("%w: %d is not greater than 0", ErrInvalidVolume, volume)
	}
	if volume > s.totalVolume {
		return fmt.Errorf("%w: %d exceeds total volume %d of %q", ErrInvalidVolume, volume, s.totalVolume, s.name)
	}
	if s.IsOccupied() {
		return fmt.Errorf("%w: %q holds order %s", ErrStoragePlaceIsOccupied, s.name, s.orderID)
	}
	return nil
}

// Store occupies the place with the order after re-checking CanStore.
func (s *StoragePlace) Store(orderID kernel.UUID, volume int) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := s.CanStore(volume); err != nil {
		return err
	}

	s.orderID = &orderID
	return nil
}

// Clear frees the place. It fails with ErrOrderNotStoredInThisPlace unless
// the place currently holds exactly this order.
func (s *StoragePlace) Clear(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !s.Holds(orderID) {
		return fmt.Errorf("%w: order %s, place %q", ErrOrderNotStoredInThisPlace, orderID, s.name)
	}

	s.orderID = nil
	return nil
}

func (s *StoragePlace) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *StoragePlace) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsInvalidErrorWithCause("name", errors.New("must not be blank"))
	}

	s.name = name
	return nil
}

func (s *StoragePlace) setTotalVolume(totalVolume int) error {
	if totalVolume <= 0 {
		return fmt.Errorf("%w: total volume %d is not greater than 0", ErrInvalidVolume, totalVolume)
	}

	s.totalVolume = totalVolume
	return nil
}

func (s *StoragePlace) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		s.orderID = nil
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	id := *orderID
	s.orderID = &id
	return nil
}
