package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository loads and stores orders.
// Lookups that find nothing return an error wrapping errs.ErrObjectNotFound.
type OrderRepository interface {
	// Add persists a new order. An order with the same id that is already
	// stored yields an error wrapping errs.ErrObjectExists.
	Add(ctx context.Context, o *order.Order) error

	// Update persists the status and courier of an existing order.
	Update(ctx context.Context, o *order.Order) error

	// GetByID loads the order without locking it.
	GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOldestCreated returns the earliest created order still waiting for a courier.
	// The row is locked until the transaction ends; rows locked by another
	// transaction are skipped.
	GetOldestCreated(ctx context.Context) (*order.Order, error)

	// GetAllAssigned returns every order in the Assigned status, locked for update.
	GetAllAssigned(ctx context.Context) ([]*order.Order, error)
}
