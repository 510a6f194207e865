package commands

import (
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

// fleetAction is embedded by the zone and vehicle administration commands.
type fleetAction struct {
	principal policy.Principal

	guard guard.ConstructorGuard
}

func newFleetAction(principal policy.Principal) (fleetAction, error) {
	if err := principal.UserID.Validate(); err != nil {
		return fleetAction{}, errs.NewValueIsRequiredErrorWithCause("principal", err)
	}
	return fleetAction{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (a fleetAction) Principal() policy.Principal {
	return a.principal
}
