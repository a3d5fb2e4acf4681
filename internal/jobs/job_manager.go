package jobs

import (
	"context"
	"fmt"
)

// JobManager starts and stops a fixed set of jobs together.
type JobManager struct {
	jobs    []*Job
	started []*Job
}

// NewJobManager manages jobs in the given order.
func NewJobManager(jobs ...*Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts the jobs in order. If one fails, those already started are stopped.
func (m *JobManager) StartAll() error {
	for _, j := range m.jobs {
		if err := j.Start(); err != nil {
			_ = m.StopAll(context.Background())
			return fmt.Errorf("start %s: %w", j.Name(), err)
		}
		m.started = append(m.started, j)
	}
	return nil
}

// StopAll stops every started job and waits for in-flight runs until ctx is done.
func (m *JobManager) StopAll(ctx context.Context) error {
	waits := make([]context.Context, 0, len(m.started))
	for _, j := range m.started {
		waits = append(waits, j.Stop())
	}
	m.started = nil

	for _, w := range waits {
		select {
		case <-w.Done():
		case <-ctx.Done():
			return fmt.Errorf("waiting for running jobs: %w", ctx.Err())
		}
	}
	return nil
}
