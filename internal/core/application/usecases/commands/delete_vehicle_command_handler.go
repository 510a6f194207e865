package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/policy"
)

// DeleteVehicleCommandHandler refuses while any order that is not CANCELLED
// still references the vehicle.
type DeleteVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
	policy     policy.Policy
}

func NewDeleteVehicleCommandHandler(uowFactory FleetUoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{uowFactory: uowFactory, policy: policy.New()}
}

func (h DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageFleet(cmd.Principal()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.VehicleRepository().Delete(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
