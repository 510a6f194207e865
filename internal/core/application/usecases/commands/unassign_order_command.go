package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrUnassignOrderCommandIsNotConstructed = errors.New(
	"UnassignOrderCommand must be created via NewUnassignOrderCommand constructor",
)

// UnassignOrderCommand takes an ASSIGNED order off its vehicle.
type UnassignOrderCommand struct {
	orderAction
}

func NewUnassignOrderCommand(principal policy.Principal, orderID kernel.UUID) (UnassignOrderCommand, error) {
	action, err := newOrderAction(principal, orderID)
	if err != nil {
		return UnassignOrderCommand{}, err
	}
	return UnassignOrderCommand{orderAction: action}, nil
}

func (c UnassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnassignOrderCommandIsNotConstructed)
}
