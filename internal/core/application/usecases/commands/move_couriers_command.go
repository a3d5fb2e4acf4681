package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

// ErrMoveCouriersCommandIsNotConstructed is returned by Validate for a zero MoveCouriersCommand.
var ErrMoveCouriersCommandIsNotConstructed = errors.New("MoveCouriersCommand must be created via NewMoveCouriersCommand")

// MoveCouriersCommand runs one move tick over every assigned order.
type MoveCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewMoveCouriersCommand returns a ready command.
func NewMoveCouriersCommand() MoveCouriersCommand {
	return MoveCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate returns ErrMoveCouriersCommandIsNotConstructed unless the command came from its constructor.
func (c MoveCouriersCommand) Validate() error {
	return c.guard.Validate(ErrMoveCouriersCommandIsNotConstructed)
}
