package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// RefChange is an optional update of a nullable reference. With Set false
// the reference is left alone; with Set true and a nil ID it is cleared.
type RefChange struct {
	Set bool
	ID  *kernel.UUID
}

// VehicleChanges lists the fields to overwrite; nil means unchanged.
type VehicleChanges struct {
	Number   *string
	Capacity *kernel.Load
	Zone     RefChange
	Driver   RefChange
}

type UpdateVehicleCommand struct {
	fleetAction
	vehicleID kernel.UUID
	changes   VehicleChanges
}

func NewUpdateVehicleCommand(
	principal policy.Principal,
	vehicleID kernel.UUID,
	changes VehicleChanges,
) (UpdateVehicleCommand, error) {
	action, actionErr := newFleetAction(principal)
	if err := errors.Join(actionErr, vehicleID.Validate()); err != nil {
		return UpdateVehicleCommand{}, err
	}
	return UpdateVehicleCommand{fleetAction: action, vehicleID: vehicleID, changes: changes}, nil
}

func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

func (c UpdateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c UpdateVehicleCommand) Changes() VehicleChanges {
	return c.changes
}
