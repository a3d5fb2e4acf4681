package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// AssignOrdersJobName names the job in logs and in its lock key.
const AssignOrdersJobName = "assign_orders_job"

// AssignOrdersHandler runs one assign tick.
type AssignOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.AssignOrdersCommand) (commands.AssignOrdersResult, error)
}

// NewAssignOrdersJob dispatches up to batchSize waiting orders per tick.
func NewAssignOrdersJob(
	handler AssignOrdersHandler,
	batchSize int,
	schedule Schedule,
	locker ports.Locker,
	logger *slog.Logger,
) (*Job, error) {
	cmd, err := commands.NewAssignOrdersCommand(batchSize)
	if err != nil {
		return nil, err
	}

	job := newJob(AssignOrdersJobName, schedule, locker, logger, func(ctx context.Context, logger *slog.Logger) error {
		res, err := handler.Handle(ctx, cmd)
		if res.Assigned > 0 {
			logger.InfoContext(ctx, "orders assigned", "count", res.Assigned)
		}
		return err
	})
	job.expected = func(err error) bool {
		return errors.Is(err, commands.ErrNoAvailableCouriers) ||
			errors.Is(err, services.ErrSuitableCourierNotFound)
	}

	return job, nil
}
