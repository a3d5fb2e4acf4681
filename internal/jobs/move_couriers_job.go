package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"
)

// MoveCouriersJobName names the job in logs and in its lock key.
const MoveCouriersJobName = "move_couriers_job"

// MoveCouriersHandler runs one move tick.
type MoveCouriersHandler interface {
	Handle(ctx context.Context, cmd commands.MoveCouriersCommand) (commands.MoveCouriersResult, error)
}

// NewMoveCouriersJob advances every busy courier by one step per tick.
func NewMoveCouriersJob(handler MoveCouriersHandler, schedule Schedule, locker ports.Locker, logger *slog.Logger) *Job {
	cmd := commands.NewMoveCouriersCommand()

	return newJob(MoveCouriersJobName, schedule, locker, logger, func(ctx context.Context, logger *slog.Logger) error {
		res, err := handler.Handle(ctx, cmd)
		if res.Moved > 0 {
			logger.DebugContext(ctx, "couriers moved", "moved", res.Moved, "failed", res.Failed)
		}
		if res.Completed > 0 {
			logger.InfoContext(ctx, "orders delivered", "count", res.Completed)
		}
		return err
	})
}
