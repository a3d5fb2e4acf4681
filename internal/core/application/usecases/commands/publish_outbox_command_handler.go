package commands

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/ports"
)

// PublishOutboxCommandHandler relays stored domain events to an EventPublisher.
type PublishOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

// NewPublishOutboxCommandHandler stamps processed messages with the current UTC time.
func NewPublishOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle publishes pending messages oldest first and returns how many were sent.
// It stops at the first failed publish; that message and the ones after it stay
// pending for the next run. Messages already sent are marked processed.
func (h PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()

	messages, err := outbox.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	published := 0
	var publishErr error
	for _, msg := range messages {
		if publishErr = h.publisher.Publish(ctx, msg); publishErr != nil {
			publishErr = fmt.Errorf("publish %s %s: %w", msg.Name, msg.ID, publishErr)
			break
		}
		if err = outbox.MarkProcessed(ctx, msg.ID, h.now()); err != nil {
			return 0, err
		}
		published++
	}

	if published > 0 {
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return published, publishErr
}
