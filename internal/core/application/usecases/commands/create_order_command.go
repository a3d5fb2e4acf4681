package commands

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned by Validate for a zero CreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New("CreateOrderCommand must be created via NewCreateOrderCommand")

// CreateOrderCommand accepts an order for delivery. The street is resolved to
// a grid location by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Tverskaya 1", 5)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck // setters are used while constructing
	orderID kernel.UUID
	street  string
	volume  int
	guard   guard.ConstructorGuard
}

// NewCreateOrderCommand requires a valid id, a non-blank street and a positive volume.
// The street is trimmed.
func NewCreateOrderCommand(orderID kernel.UUID, street string, volume int) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStreet(street),
		cmd.setVolume(volume),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrCreateOrderCommandIsNotConstructed unless the command came from its constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the client supplied order id.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Street returns the delivery address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// Volume returns the order volume.
func (c CreateOrderCommand) Volume() int {
	return c.volume
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	c.street = street
	return nil
}

func (c *CreateOrderCommand) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("volume", fmt.Errorf("%d is not greater than 0", volume))
	}
	c.volume = volume
	return nil
}
