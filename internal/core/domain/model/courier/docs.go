// Package courier provides the Courier aggregate and the storage places it owns.
// It covers courier identity, movement over the delivery grid and the capacity
// bookkeeping that decides which orders a courier can carry.
//
// The package includes:
//   - Courier: The aggregate root that manages identity, movement and carried orders
//   - StoragePlace: An entity holding at most one order within a fixed volume
//
// Key business rules:
//   - Couriers must have a valid identifier, a non-blank name, a positive speed and a location
//   - Every courier starts with a default place named "Bag" of volume 10
//   - A storage place stores at most one order whose volume fits its capacity
//   - Orders go into the first free place that fits, in insertion order
//   - Movement spends the speed budget on the X axis first, then on the Y axis
//
// Storage places are owned exclusively by their courier and are changed only
// through the courier's methods, so a loaded courier is always consistent.
package courier
