package commands

import (
	"context"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/zone"
	"fleetdispatch/internal/core/domain/policy"
)

type CreateZoneCommandHandler struct {
	uowFactory FleetUoWFactory
	policy     policy.Policy
	now        func() time.Time
}

func NewCreateZoneCommandHandler(uowFactory FleetUoWFactory, now func() time.Time) CreateZoneCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateZoneCommandHandler{uowFactory: uowFactory, policy: policy.New(), now: now}
}

// Handle stores the zone. A duplicate name surfaces as *errs.AlreadyExistsError.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) (*zone.Zone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanManageFleet(cmd.Principal()); err != nil {
		return nil, err
	}

	z, err := zone.NewZone(kernel.NewUUID(), cmd.Name(), cmd.Boundary(), h.now().UTC())
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

	if err = uow.ZoneRepository().Add(ctx, z); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return z, nil
}
