package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrAdminCancelOrderCommandIsNotConstructed = errors.New(
	"AdminCancelOrderCommand must be created via NewAdminCancelOrderCommand constructor",
)

// AdminCancelOrderCommand cancels a PENDING or ASSIGNED order on behalf of an admin.
type AdminCancelOrderCommand struct {
	orderAction
}

func NewAdminCancelOrderCommand(principal policy.Principal, orderID kernel.UUID) (AdminCancelOrderCommand, error) {
	action, err := newOrderAction(principal, orderID)
	if err != nil {
		return AdminCancelOrderCommand{}, err
	}
	return AdminCancelOrderCommand{orderAction: action}, nil
}

func (c AdminCancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdminCancelOrderCommandIsNotConstructed)
}
