// Package commands contains the use cases that change system state.
//
// Each command is a validated value built through its constructor, and each
// handler runs it inside a unit of work:
//   - CreateCourierCommand and AddCourierStorageCommand manage couriers
//   - CreateOrderCommand accepts orders, idempotent on the order id
//   - AssignOrdersCommand matches waiting orders with couriers
//   - MoveCouriersCommand moves couriers and completes delivered orders
//   - PublishOutboxCommand relays stored domain events
//
// Handlers depend on narrow unit of work interfaces declared here, so tests can
// mock only the repositories a use case touches.
package commands

import (
	"dispatch/internal/core/ports"
)

// Handlers depend on the narrowest unit of work they need. The composition root
// adapts ports.UnitOfWorkFactory to each of these.
type (
	// OrderRepoFactory exposes the order repository of a unit of work.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory exposes the courier repository of a unit of work.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OutboxRepoFactory exposes the outbox repository of a unit of work.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW is a transaction over orders.
	OrderUoW interface {
		ports.TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates an OrderUoW per use case call.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW is a transaction over couriers.
	CourierUoW interface {
		ports.TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates a CourierUoW per use case call.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// OutboxUoW is a transaction over the outbox.
	OutboxUoW interface {
		ports.TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates an OutboxUoW per relay run.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// UoW is a transaction over couriers and orders together.
	UoW interface {
		ports.TxManager
		CourierRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates a UoW per tick.
	UoWFactory interface {
		Create() UoW
	}
)
