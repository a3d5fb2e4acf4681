// Package queries contains the read operations of the dispatch service.
//
// Queries bypass the aggregates and read flat views straight from the database
// through GORM, without locks or units of work:
//   - GetAllCouriersQuery lists every courier with its location
//   - GetUncompletedOrdersQuery lists created and assigned orders in intake order
//
// Views carry validated kernel values, so a corrupt row surfaces as an error
// instead of reaching the HTTP layer.
package queries
