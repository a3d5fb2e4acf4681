package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultLockTTL applies when a Schedule leaves LockTTL unset.
const DefaultLockTTL = 30 * time.Second

// Schedule is a six-field cron spec (with seconds) plus the lock TTL of each run.
type Schedule struct {
	// Spec is the cron expression, for example "*/1 * * * * *".
	Spec string
	// LockTTL bounds a single run and the lock that guards it.
	LockTTL time.Duration
}

type tickFunc func(ctx context.Context, logger *slog.Logger) error

// Job is one named periodic tick.
type Job struct {
	name     string
	schedule Schedule
	locker   ports.Locker
	tick     tickFunc
	expected func(error) bool
	logger   *slog.Logger
	cron     *cron.Cron
}

func newJob(name string, schedule Schedule, locker ports.Locker, logger *slog.Logger, tick tickFunc) *Job {
	if schedule.LockTTL <= 0 {
		schedule.LockTTL = DefaultLockTTL
	}

	logger = logger.With("component", name)
	cl := cronLogger{logger: logger}

	return &Job{
		name:     name,
		schedule: schedule,
		locker:   locker,
		tick:     tick,
		expected: func(error) bool { return false },
		logger:   logger,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}
}

// Name returns the job name.
func (j *Job) Name() string {
	return j.name
}

// Start schedules the job. An invalid Spec fails here.
func (j *Job) Start() error {
	if _, err := j.cron.AddFunc(j.schedule.Spec, func() { _ = j.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %s with %q: %w", j.name, j.schedule.Spec, err)
	}

	j.cron.Start()
	j.logger.Info("job started", "schedule", j.schedule.Spec)
	return nil
}

// Stop unschedules the job and returns a context that is done once the
// in-flight run, if any, has finished.
func (j *Job) Stop() context.Context {
	done := j.cron.Stop()
	j.logger.Info("job stopped")
	return done
}

// RunOnce executes a single tick under the job's lock. A lock held elsewhere
// is not an error. The returned error is the one that was logged.
func (j *Job) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.schedule.LockTTL)
	defer cancel()

	release, err := j.locker.TryLock(ctx, j.name, j.schedule.LockTTL)
	if errors.Is(err, ports.ErrLockIsHeld) {
		j.logger.DebugContext(ctx, "tick skipped, lock is held elsewhere")
		return nil
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "acquire tick lock", "error", err)
		return err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			j.logger.WarnContext(ctx, "release tick lock", "error", err)
		}
	}()

	err = j.tick(ctx, j.logger)
	switch {
	case err == nil:
	case j.expected(err):
		j.logger.DebugContext(ctx, "tick finished without work", "reason", err)
	default:
		j.logger.ErrorContext(ctx, "tick failed", "error", err)
	}
	return err
}

// cronLogger routes robfig/cron's own messages into slog.
type cronLogger struct {
	logger *slog.Logger
}

// Info logs cron's routine messages at debug level.
func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Error logs cron failures, including recovered panics.
func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
