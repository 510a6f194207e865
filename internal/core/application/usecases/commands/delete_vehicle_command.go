package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

type DeleteVehicleCommand struct {
	fleetAction
	vehicleID kernel.UUID
}

func NewDeleteVehicleCommand(principal policy.Principal, vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	action, actionErr := newFleetAction(principal)
	if err := errors.Join(actionErr, vehicleID.Validate()); err != nil {
		return DeleteVehicleCommand{}, err
	}
	return DeleteVehicleCommand{fleetAction: action, vehicleID: vehicleID}, nil
}

func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

func (c DeleteVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
