package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand records one side of the handover. The side is derived from the principal.
type ConfirmDeliveryCommand struct {
	orderAction
}

func NewConfirmDeliveryCommand(principal policy.Principal, orderID kernel.UUID) (ConfirmDeliveryCommand, error) {
	action, err := newOrderAction(principal, orderID)
	if err != nil {
		return ConfirmDeliveryCommand{}, err
	}
	return ConfirmDeliveryCommand{orderAction: action}, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}
