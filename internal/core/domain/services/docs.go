// Package services holds the domain services that work across aggregates:
//   - GeofenceIndex resolves a coordinate to a zone
//   - CapacityMatcher finds vehicles that can carry a load
//   - OrderDispatcher applies an assignment to an order and its vehicles
//
// None of them performs I/O; callers load the aggregates and persist the result.
package services
