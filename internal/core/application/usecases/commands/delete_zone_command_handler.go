package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/policy"
)

// DeleteZoneCommandHandler refuses while vehicles are still bound to the zone.
type DeleteZoneCommandHandler struct {
	uowFactory FleetUoWFactory
	policy     policy.Policy
}

func NewDeleteZoneCommandHandler(uowFactory FleetUoWFactory) DeleteZoneCommandHandler {
	return DeleteZoneCommandHandler{uowFactory: uowFactory, policy: policy.New()}
}

func (h DeleteZoneCommandHandler) Handle(ctx context.Context, cmd DeleteZoneCommand) error {
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

	if err := uow.ZoneRepository().Delete(ctx, cmd.ZoneID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
