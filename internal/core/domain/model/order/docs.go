// Package order provides the Order aggregate and its lifecycle.
// It covers order identity, the delivery destination and the state machine
// that tracks an order from intake to delivery.
//
// The package includes:
//   - Order: The aggregate root that manages identity, destination, volume and status
//   - Status: The forward-only state machine of an order
//   - CreatedEvent and CompletedEvent: Domain events published through the outbox
//
// Key business rules:
//   - Orders must have a valid identifier, a location and a positive volume
//   - Status follows Created -> Assigned -> Completed, no step skipped or reversed
//   - An order is assigned to exactly one courier and is never reassigned
//   - A courier reference is present exactly in the Assigned and Completed statuses
//
// Creation and completion are recorded as domain events on the aggregate. The
// persistence layer drains them into the outbox in the same transaction that
// stores the order.
package order
