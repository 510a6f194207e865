package commands

import (
	"context"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"
)

type CreateVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
	policy     policy.Policy
	now        func() time.Time
}

func NewCreateVehicleCommandHandler(uowFactory FleetUoWFactory, now func() time.Time) CreateVehicleCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateVehicleCommandHandler{uowFactory: uowFactory, policy: policy.New(), now: now}
}

// Handle validates the vehicle fields, checks that the zone exists and
// stores the vehicle with nothing committed.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanManageFleet(cmd.Principal()); err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		cmd.Number(),
		cmd.Capacity(),
		cmd.ZoneID(),
		cmd.DriverID(),
		h.now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if zoneID := v.ZoneID(); zoneID != nil {
		if _, err = uow.ZoneRepository().GetForShare(ctx, *zoneID); err != nil {
			return nil, err
		}
	}

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
