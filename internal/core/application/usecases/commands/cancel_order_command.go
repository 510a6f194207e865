package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is the requester withdrawing an order that has not been assigned yet.
type CancelOrderCommand struct {
	orderAction
}

func NewCancelOrderCommand(principal policy.Principal, orderID kernel.UUID) (CancelOrderCommand, error) {
	action, err := newOrderAction(principal, orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderAction: action}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}
