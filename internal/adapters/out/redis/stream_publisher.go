package redis

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const defaultStreamMaxLen = 100_000

// StreamPublisher appends outbox messages to a Redis stream. Each entry carries
// the event id, name, aggregate id, occurrence time and the JSON payload.
type StreamPublisher struct {
	client goredis.Cmdable
	stream string
	maxLen int64
}

// NewStreamPublisher writes to stream, trimmed to roughly 100000 entries.
func NewStreamPublisher(client goredis.Cmdable, stream string) *StreamPublisher {
	return &StreamPublisher{
		client: client,
		stream: stream,
		maxLen: defaultStreamMaxLen,
	}
}

// Publish appends msg with XADD.
func (p *StreamPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	err := p.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"eventId":     msg.ID.String(),
			"name":        msg.Name,
			"aggregateId": msg.AggregateID.String(),
			"occurredAt":  msg.OccurredAt.UTC().Format(time.RFC3339Nano),
			"payload":     string(msg.Payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s to %s: %w", msg.Name, p.stream, err)
	}

	return nil
}
