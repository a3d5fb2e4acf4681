// Package ports defines the contracts between the application core and its adapters.
// Repositories, the unit of work, the outbox, geocoding and distributed locking are
// declared here and implemented under internal/adapters, so the core never
// depends on infrastructure.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository loads and stores couriers together with their storage places.
// Lookups that find nothing return an error wrapping errs.ErrObjectNotFound.
type CourierRepository interface {
	// Add persists a new courier with all of its storage places.
	Add(ctx context.Context, c *courier.Courier) error

	// Update persists the courier location and its storage places, adding
	// places that are not stored yet.
	Update(ctx context.Context, c *courier.Courier) error

	// GetByID loads the courier with its storage places, locked for update.
	GetByID(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllWithFreeCapacity returns couriers that have at least one unoccupied
	// storage place, ordered by id. Rows are locked until the transaction ends.
	GetAllWithFreeCapacity(ctx context.Context) ([]*courier.Courier, error)
}
