// Package errs provides the error kinds shared by the domain, the use cases
// and the adapters of the dispatch service.
//
// The package includes one kind per failure class:
//   - ValueIsRequiredError: A mandatory value is missing
//   - ValueIsInvalidError: A value breaks a business rule
//   - ValueIsOutOfRangeError: A value lies outside an inclusive range
//   - ObjectNotFoundError: A lookup found nothing
//   - ObjectExistsError: An insert collided with a stored object
//   - StateIsInvalidError: Aggregates loaded together contradict each other
//
// Each kind follows the same pattern:
//   - A sentinel error variable, such as ErrObjectNotFound
//   - A struct carrying the offending parameter
//   - Constructors with and without a cause where a cause makes sense
//   - An Error method that keeps messages on one line
//   - An Unwrap method returning the sentinel
//
// Callers classify errors with errors.Is against the sentinels, and the HTTP
// adapter maps each sentinel to a status code.
package errs
