package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPublishOutboxCommandIsNotConstructed is returned by Validate for a zero PublishOutboxCommand.
var ErrPublishOutboxCommandIsNotConstructed = errors.New("PublishOutboxCommand must be created via NewPublishOutboxCommand")

// PublishOutboxCommand relays up to BatchSize pending domain events to the event sink.
type PublishOutboxCommand struct {
	batchSize int
	guard     guard.ConstructorGuard
}

// NewPublishOutboxCommand requires a positive batch size.
func NewPublishOutboxCommand(batchSize int) (PublishOutboxCommand, error) {
	if batchSize <= 0 {
		return PublishOutboxCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}

	return PublishOutboxCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrPublishOutboxCommandIsNotConstructed unless the command came from its constructor.
func (c PublishOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxCommandIsNotConstructed)
}

// BatchSize returns the maximum number of messages relayed per run.
func (c PublishOutboxCommand) BatchSize() int {
	return c.batchSize
}
