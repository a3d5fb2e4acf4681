package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"
)

// OutboxRelayJobName names the job in logs and in its lock key.
const OutboxRelayJobName = "outbox_relay_job"

// PublishOutboxHandler relays one batch of outbox messages.
type PublishOutboxHandler interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// NewOutboxRelayJob publishes up to batchSize pending domain events per tick.
func NewOutboxRelayJob(
	handler PublishOutboxHandler,
	batchSize int,
	schedule Schedule,
	locker ports.Locker,
	logger *slog.Logger,
) (*Job, error) {
	cmd, err := commands.NewPublishOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}

	return newJob(OutboxRelayJobName, schedule, locker, logger, func(ctx context.Context, logger *slog.Logger) error {
		published, err := handler.Handle(ctx, cmd)
		if published > 0 {
			logger.DebugContext(ctx, "outbox messages published", "count", published)
		}
		return err
	}), nil
}
