// Package vehicle holds the Vehicle aggregate: identity, capacity, the zone it
// serves, its driver and the load currently committed to it.
package vehicle
