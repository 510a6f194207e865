package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrStartShipmentCommandIsNotConstructed = errors.New(
	"StartShipmentCommand must be created via NewStartShipmentCommand constructor",
)

// StartShipmentCommand is sent by the driver when the parcel leaves with the vehicle.
type StartShipmentCommand struct {
	orderAction
}

func NewStartShipmentCommand(principal policy.Principal, orderID kernel.UUID) (StartShipmentCommand, error) {
	action, err := newOrderAction(principal, orderID)
	if err != nil {
		return StartShipmentCommand{}, err
	}
	return StartShipmentCommand{orderAction: action}, nil
}

func (c StartShipmentCommand) Validate() error {
	return c.guard.Validate(ErrStartShipmentCommandIsNotConstructed)
}
