// Package services provides domain services that coordinate the courier and
// order aggregates. It holds business logic that does not belong to a single
// aggregate root.
//
// The package includes:
//   - OrderDispatcher: Chooses the courier that reaches an order first and assigns the order to it
//
// Key business rules:
//   - Only couriers with a free storage place large enough for the order are candidates
//   - The candidate with the smallest travel time (distance divided by speed) wins
//   - On equal travel time the candidate listed first wins
//   - Assignment updates the order and the winning courier together
//
// Domain services hold no state. Loading and saving the aggregates they touch
// is left to the application layer.
package services
