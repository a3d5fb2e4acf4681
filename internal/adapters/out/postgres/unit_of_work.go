// Package postgres is the PostgreSQL persistence adapter: a GORM-backed unit of
// work over the courier, order and outbox repositories plus schema migrations.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/outboxrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// ErrNoActiveTransaction is returned by Commit when Begin was not called.
var ErrNoActiveTransaction = errors.New("unit of work has no active transaction")

// UnitOfWorkFactory hands out units of work sharing one connection pool.
type UnitOfWorkFactory struct {
	db *gorm.DB
}

// NewUnitOfWorkFactory wraps an opened GORM connection.
func NewUnitOfWorkFactory(db *gorm.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

// Create returns a unit with no open transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.db}
}

// UnitOfWork scopes the repositories to one transaction. Aggregates saved
// through its repositories are tracked; on Commit their pending domain events
// are written to the outbox before the transaction is committed.
//
// A UnitOfWork is not safe for concurrent use.
type UnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []any
}

// Begin is a no-op if a transaction is already open.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	u.tx = tx
	u.tracked = nil
	return nil
}

// Commit appends the events of tracked aggregates to the outbox and commits.
// Events are cleared from the aggregates only after a successful commit.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}

	sources := u.eventSources()
	var events []kernel.DomainEvent
	for _, src := range sources {
		events = append(events, src.DomainEvents()...)
	}

	if err := outboxrepo.NewRepository(u.tx).Append(ctx, events); err != nil {
		_ = u.Rollback(ctx)
		return err
	}

	err := u.tx.Commit().Error
	u.tx = nil
	u.tracked = nil
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	for _, src := range sources {
		src.ClearDomainEvents()
	}
	return nil
}

// Rollback after Commit, or without Begin, does nothing.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	u.tracked = nil
	if err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// CourierRepository returns a courier repository on the current transaction.
func (u *UnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewRepository(u.conn(), u)
}

// OrderRepository returns an order repository on the current transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewRepository(u.conn(), u)
}

// OutboxRepository returns an outbox repository on the current transaction.
func (u *UnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewRepository(u.conn())
}

// Track records an aggregate saved in the current transaction. Saving the same
// aggregate twice tracks it once.
func (u *UnitOfWork) Track(aggregate any) {
	for _, t := range u.tracked {
		if t == aggregate {
			return
		}
	}
	u.tracked = append(u.tracked, aggregate)
}

func (u *UnitOfWork) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWork) eventSources() []kernel.EventSource {
	sources := make([]kernel.EventSource, 0, len(u.tracked))
	for _, t := range u.tracked {
		if src, ok := t.(kernel.EventSource); ok {
			sources = append(sources, src)
		}
	}
	return sources
}
