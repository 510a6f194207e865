package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrDeleteZoneCommandIsNotConstructed = errors.New(
	"DeleteZoneCommand must be created via NewDeleteZoneCommand constructor",
)

type DeleteZoneCommand struct {
	fleetAction
	zoneID kernel.UUID
}

func NewDeleteZoneCommand(principal policy.Principal, zoneID kernel.UUID) (DeleteZoneCommand, error) {
	action, actionErr := newFleetAction(principal)
	if err := errors.Join(actionErr, zoneID.Validate()); err != nil {
		return DeleteZoneCommand{}, err
	}
	return DeleteZoneCommand{fleetAction: action, zoneID: zoneID}, nil
}

func (c DeleteZoneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteZoneCommandIsNotConstructed)
}

func (c DeleteZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}
