// Package kernel provides the shared value objects of the dispatch domain.
// Every aggregate builds on these primitives, and none of them depends on
// anything outside the domain layer besides github.com/google/uuid.
//
// The package includes:
//   - UUID: An identifier value object with validation and comparison
//   - Location: An immutable point on the 10x10 delivery grid with Manhattan distance
//   - Coordinate: The single-axis value used by Location
//   - DomainEvent: The contract of facts recorded by aggregates
//   - BaseEvent: The embeddable carrier of the fields every event shares
//
// Key business rules:
//   - Grid coordinates are inclusive in [1..10] on both axes
//   - The zero Location and the nil UUID stand for "missing" and fail validation
//   - Distance between two locations is |x1-x2| + |y1-y2|
//   - Events get a fresh identifier and a UTC timestamp when they are created
//
// Value objects are compared by value and are safe to copy and to share
// between goroutines once constructed.
package kernel
