package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand adds a vehicle to the fleet. Zone and driver are optional.
type CreateVehicleCommand struct {
	fleetAction
	number   string
	capacity kernel.Load
	zoneID   *kernel.UUID
	driverID *kernel.UUID
}

func NewCreateVehicleCommand(
	principal policy.Principal,
	number string,
	capacity kernel.Load,
	zoneID, driverID *kernel.UUID,
) (CreateVehicleCommand, error) {
	action, err := newFleetAction(principal)
	if err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{
		fleetAction: action,
		number:      number,
		capacity:    capacity,
		zoneID:      zoneID,
		driverID:    driverID,
	}, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) Number() string {
	return c.number
}

func (c CreateVehicleCommand) Capacity() kernel.Load {
	return c.capacity
}

func (c CreateVehicleCommand) ZoneID() *kernel.UUID {
	return c.zoneID
}

func (c CreateVehicleCommand) DriverID() *kernel.UUID {
	return c.driverID
}
