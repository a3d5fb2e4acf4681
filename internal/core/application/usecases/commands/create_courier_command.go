package commands

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrCreateCourierCommandIsNotConstructed is returned by Validate for a zero CreateCourierCommand.
var ErrCreateCourierCommandIsNotConstructed = errors.New("CreateCourierCommand must be created via NewCreateCourierCommand")

// CreateCourierCommand registers a new courier with a generated id.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("Ivan", 2, kernel.Location{})
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//	c, err := handler.Handle(ctx, cmd) // placed on a random cell
type CreateCourierCommand struct { //nolint:recvcheck // setters are used while constructing
	courierID kernel.UUID
	name      string
	speed     int
	location  kernel.Location
	guard     guard.ConstructorGuard
}

// NewCreateCourierCommand assigns a fresh id to the courier. A missing location
// places the courier on a random grid cell.
func NewCreateCourierCommand(name string, speed int, location kernel.Location) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		courierID: kernel.NewUUID(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setSpeed(speed),
		cmd.setLocation(location),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrCreateCourierCommandIsNotConstructed unless the command came from its constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the id generated for the courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the trimmed courier name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Speed returns the courier speed.
func (c CreateCourierCommand) Speed() int {
	return c.speed
}

// Location returns the starting location.
func (c CreateCourierCommand) Location() kernel.Location {
	return c.location
}

func (c *CreateCourierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCourierCommand) setSpeed(speed int) error {
	if speed <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("speed", fmt.Errorf("%d is not greater than 0", speed))
	}
	c.speed = speed
	return nil
}

func (c *CreateCourierCommand) setLocation(location kernel.Location) error {
	if location.Validate() == nil {
		c.location = location
		return nil
	}

	random, err := kernel.NewRandomLocation()
	if err != nil {
		return err
	}
	c.location = random
	return nil
}
