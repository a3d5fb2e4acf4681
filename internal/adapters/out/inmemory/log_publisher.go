package inmemory

import (
	"context"
	"log/slog"

	"dispatch/internal/core/ports"
)

// LogPublisher writes every outbox message to the log instead of a broker.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher logs through logger at info level.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "log_publisher")}
}

// Publish logs msg and never fails.
func (p *LogPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	p.logger.InfoContext(ctx, "domain event",
		"event_id", msg.ID.String(),
		"name", msg.Name,
		"aggregate_id", msg.AggregateID.String(),
		"occurred_at", msg.OccurredAt,
		"payload", string(msg.Payload),
	)
	return nil
}
