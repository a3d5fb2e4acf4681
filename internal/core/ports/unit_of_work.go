package ports

import "context"

// TxManager scopes repository calls to one database transaction.
// Rollback after Commit is a no-op, so it can always be deferred.
type TxManager interface {
	// Begin opens the transaction. Repositories used before Begin run without one.
	Begin(ctx context.Context) error
	// Commit writes the outbox events of tracked aggregates and commits.
	Commit(ctx context.Context) error
	// Rollback discards the transaction.
	Rollback(ctx context.Context) error
}

// UnitOfWork commits every aggregate saved through its repositories, together
// with the domain events they recorded, in a single transaction.
type UnitOfWork interface {
	TxManager
	// CourierRepository returns the courier repository bound to this unit.
	CourierRepository() CourierRepository
	// OrderRepository returns the order repository bound to this unit.
	OrderRepository() OrderRepository
	// OutboxRepository returns the outbox repository bound to this unit.
	OutboxRepository() OutboxRepository
}

// UnitOfWorkFactory creates a fresh UnitOfWork per use case invocation.
type UnitOfWorkFactory interface {
	// Create returns a new unit with no open transaction.
	Create() UnitOfWork
}
