// Package jobs provides the scheduled background ticks of the dispatch service.
//
// Jobs are built on github.com/robfig/cron/v3 with six-field specs that include
// seconds.
//
// # Available Jobs
//
// 1. assign_orders_job - Matches waiting orders with the fastest free courier
// 2. move_couriers_job - Moves busy couriers one step and completes arrived orders
// 3. outbox_relay_job - Publishes stored domain events to the event sink
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	manager := jobs.NewJobManager(assignJob, moveJob, relayJob)
//	if err := manager.StartAll(); err != nil {
//		return fmt.Errorf("start jobs: %w", err)
//	}
//	defer manager.StopAll(shutdownCtx)
//
// # Overlap Protection
//
// Inside the process cron's SkipIfStillRunning drops a trigger while the
// previous run is still going. Across processes a ports.Locker keyed by the job
// name lets one instance run a tick at a time. The lock TTL is also the run timeout.
//
// # Error Handling
//
// Expected business outcomes, such as no courier being free, are logged at
// debug level. Anything else is logged as an error and retried on the next tick.
// A failed start stops the jobs that were already running.
package jobs
