package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrAssignOrdersCommandIsNotConstructed is returned by Validate for a zero AssignOrdersCommand.
var ErrAssignOrdersCommandIsNotConstructed = errors.New("AssignOrdersCommand must be created via NewAssignOrdersCommand")

// AssignOrdersCommand runs one assign tick. BatchSize is the maximum number of
// orders matched in the tick, each in its own transaction.
type AssignOrdersCommand struct {
	batchSize int
	guard     guard.ConstructorGuard
}

// NewAssignOrdersCommand requires a positive batch size.
func NewAssignOrdersCommand(batchSize int) (AssignOrdersCommand, error) {
	if batchSize <= 0 {
		return AssignOrdersCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}

	return AssignOrdersCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrAssignOrdersCommandIsNotConstructed unless the command came from its constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// BatchSize returns the maximum number of orders matched per tick.
func (c AssignOrdersCommand) BatchSize() int {
	return c.batchSize
}
