package services

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
)

// ErrVehicleNotFound is returned when no vehicle in the candidate set can
// carry the order.
var ErrVehicleNotFound = errors.New("vehicle not found")

// OrderDispatcher applies assignment decisions to an order and the committed
// load of the vehicles involved. It never touches storage.
type OrderDispatcher struct {
	matcher CapacityMatcher
}

func NewOrderDispatcher(matcher CapacityMatcher) OrderDispatcher {
	return OrderDispatcher{matcher: matcher}
}

// Dispatch assigns the order to the first vehicle that fits it and commits
// the order's demand to that vehicle.
func (d OrderDispatcher) Dispatch(o *order.Order, vehicles []*vehicle.Vehicle) (*vehicle.Vehicle, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if _, err := order.Transition(o.Status(), order.EventAssign); err != nil {
		return nil, err
	}

	chosen := d.matcher.Match(o.Demand(), vehicles)
	if chosen == nil {
		return nil, ErrVehicleNotFound
	}

	if err := o.Assign(chosen.ID()); err != nil {
		return nil, err
	}
	chosen.Commit(o.Demand())

	return chosen, nil
}

// Reassign moves the order onto target without any capacity check. previous
// is the vehicle currently holding the order, nil for a pending order.
func (d OrderDispatcher) Reassign(o *order.Order, previous, target *vehicle.Vehicle) error {
	if err := errors.Join(o.Validate(), target.Validate()); err != nil {
		return err
	}

	if err := o.Assign(target.ID()); err != nil {
		return err
	}
	if previous != nil {
		previous.Release(o.Demand())
	}
	target.Commit(o.Demand())
	return nil
}

// Release returns the order's demand to v. v may be nil when the order had
// no vehicle.
func (d OrderDispatcher) Release(o *order.Order, v *vehicle.Vehicle) {
	if v != nil {
		v.Release(o.Demand())
	}
}
