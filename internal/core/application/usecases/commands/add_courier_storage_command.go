package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrAddCourierStorageCommandIsNotConstructed is returned by Validate for a zero AddCourierStorageCommand.
var ErrAddCourierStorageCommandIsNotConstructed = errors.New(
	"AddCourierStorageCommand must be created via NewAddCourierStorageCommand",
)

// AddCourierStorageCommand adds a storage place to an existing courier.
// Name and volume are checked by the courier aggregate.
type AddCourierStorageCommand struct {
	courierID   kernel.UUID
	name        string
	totalVolume int
	guard       guard.ConstructorGuard
}

// NewAddCourierStorageCommand requires a valid courier id.
func NewAddCourierStorageCommand(courierID kernel.UUID, name string, totalVolume int) (AddCourierStorageCommand, error) {
	if err := courierID.Validate(); err != nil {
		return AddCourierStorageCommand{}, err
	}

	return AddCourierStorageCommand{
		courierID:   courierID,
		name:        name,
		totalVolume: totalVolume,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrAddCourierStorageCommandIsNotConstructed unless the command came from its constructor.
func (c AddCourierStorageCommand) Validate() error {
	return c.guard.Validate(ErrAddCourierStorageCommandIsNotConstructed)
}

// CourierID returns the courier receiving the place.
func (c AddCourierStorageCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the label of the new place.
func (c AddCourierStorageCommand) Name() string {
	return c.name
}

// TotalVolume returns the capacity of the new place.
func (c AddCourierStorageCommand) TotalVolume() int {
	return c.totalVolume
}
