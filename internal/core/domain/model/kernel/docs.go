// Package kernel holds the value objects shared by every aggregate of the
// dispatch domain:
//   - UUID: identifiers of zones, vehicles, orders and principals
//   - Location: a (latitude, longitude) coordinate
//   - Dimensions: a parcel footprint with its derived volume
//   - Load: a weight and volume pair used for demand and capacity
//
// Value objects are immutable; the zero value of a guarded type fails Validate.
package kernel
