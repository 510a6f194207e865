package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"
)

// UpdateVehicleCommandHandler applies a partial update. Shrinking the
// capacity below the committed load is allowed; new orders simply stop fitting.
type UpdateVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
	policy     policy.Policy
}

func NewUpdateVehicleCommandHandler(uowFactory FleetUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{uowFactory: uowFactory, policy: policy.New()}
}

func (h UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanManageFleet(cmd.Principal()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VehicleRepository().GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	changes := cmd.Changes()
	if changes.Zone.Set && changes.Zone.ID != nil {
		if _, err = uow.ZoneRepository().GetForShare(ctx, *changes.Zone.ID); err != nil {
			return nil, err
		}
	}

	if err = applyVehicleChanges(v, changes); err != nil {
		return nil, err
	}

	if err = uow.VehicleRepository().Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}

func applyVehicleChanges(v *vehicle.Vehicle, changes VehicleChanges) error {
	var errNumber, errCapacity, errZone, errDriver error
	if changes.Number != nil {
		errNumber = v.Renumber(*changes.Number)
	}
	if changes.Capacity != nil {
		errCapacity = v.Resize(*changes.Capacity)
	}
	if changes.Zone.Set {
		errZone = v.MoveToZone(changes.Zone.ID)
	}
	if changes.Driver.Set {
		errDriver = v.AssignDriver(changes.Driver.ID)
	}
	return errors.Join(errNumber, errCapacity, errZone, errDriver)
}
