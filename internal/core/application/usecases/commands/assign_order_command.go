package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand is the admin override that puts an order on a chosen
// vehicle regardless of its remaining capacity.
type AssignOrderCommand struct {
	orderAction
	vehicleID kernel.UUID
}

func NewAssignOrderCommand(principal policy.Principal, orderID, vehicleID kernel.UUID) (AssignOrderCommand, error) {
	action, actionErr := newOrderAction(principal, orderID)
	if err := errors.Join(actionErr, vehicleID.Validate()); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{orderAction: action, vehicleID: vehicleID}, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
