package services

import (
	"fmt"
	"slices"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"
)

// CapacityPolicy selects how much of a vehicle is considered free.
type CapacityPolicy int

const (
	// CapacityCommitted requires the demand to fit next to the load already
	// committed by active orders.
	CapacityCommitted CapacityPolicy = iota
	// CapacityStatic compares each order against maximum capacity only.
	CapacityStatic
)

func ParseCapacityPolicy(s string) (CapacityPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "committed":
		return CapacityCommitted, nil
	case "static":
		return CapacityStatic, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("capacityPolicy", fmt.Errorf("%q is not a known policy", s))
	}
}

func (p CapacityPolicy) String() string {
	if p == CapacityStatic {
		return "static"
	}
	return "committed"
}

// CapacityMatcher picks vehicles that can carry a load. It is first-fit in
// creation order; there is no best-fit or balancing.
type CapacityMatcher struct {
	policy CapacityPolicy
}

func NewCapacityMatcher(policy CapacityPolicy) CapacityMatcher {
	return CapacityMatcher{policy: policy}
}

func (m CapacityMatcher) Policy() CapacityPolicy {
	return m.policy
}

// Fits reports whether v can take demand under the configured policy.
// Maximum capacity is always compared exactly.
func (m CapacityMatcher) Fits(v *vehicle.Vehicle, demand kernel.Load) bool {
	return m.fits(v, kernel.Load{}, demand)
}

func (m CapacityMatcher) fits(v *vehicle.Vehicle, carried, demand kernel.Load) bool {
	if !v.Admits(demand) {
		return false
	}
	if m.policy == CapacityStatic {
		return true
	}
	return v.HasRoomReplacing(carried, demand)
}

// Match returns the first fitting vehicle, or nil.
func (m CapacityMatcher) Match(demand kernel.Load, vehicles []*vehicle.Vehicle) *vehicle.Vehicle {
	for _, v := range byCreation(vehicles) {
		if m.Fits(v, demand) {
			return v
		}
	}
	return nil
}

// MatchAll returns every fitting vehicle in creation order.
func (m CapacityMatcher) MatchAll(demand kernel.Load, vehicles []*vehicle.Vehicle) []*vehicle.Vehicle {
	var fitting []*vehicle.Vehicle
	for _, v := range byCreation(vehicles) {
		if m.Fits(v, demand) {
			fitting = append(fitting, v)
		}
	}
	return fitting
}

// MatchAllFor is MatchAll for an existing order. The vehicle that already
// carries o is judged without o's own demand in its committed load.
func (m CapacityMatcher) MatchAllFor(o *order.Order, vehicles []*vehicle.Vehicle) []*vehicle.Vehicle {
	var fitting []*vehicle.Vehicle
	for _, v := range byCreation(vehicles) {
		var carried kernel.Load
		if carries(v, o) {
			carried = o.Demand()
		}
		if m.fits(v, carried, o.Demand()) {
			fitting = append(fitting, v)
		}
	}
	return fitting
}

func carries(v *vehicle.Vehicle, o *order.Order) bool {
	id := o.VehicleID()
	return o.Status().IsActive() && id != nil && id.IsEqual(v.ID())
}

func byCreation(vehicles []*vehicle.Vehicle) []*vehicle.Vehicle {
	sorted := make([]*vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Validate() == nil {
			sorted = append(sorted, v)
		}
	}
	slices.SortStableFunc(sorted, func(a, b *vehicle.Vehicle) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})
	return sorted
}
