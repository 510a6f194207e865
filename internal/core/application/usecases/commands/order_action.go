package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

// orderAction is the shared payload of commands that act on one existing
// order on behalf of a principal.
type orderAction struct { //nolint:recvcheck //using for validation
	principal policy.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func newOrderAction(principal policy.Principal, orderID kernel.UUID) (orderAction, error) {
	a := orderAction{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setPrincipal(principal),
		a.setOrderID(orderID),
	); err != nil {
		return orderAction{}, err
	}

	return a, nil
}

func (a orderAction) Principal() policy.Principal {
	return a.principal
}

func (a orderAction) OrderID() kernel.UUID {
	return a.orderID
}

func (a *orderAction) setPrincipal(principal policy.Principal) error {
	if err := principal.UserID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("principal", err)
	}

	a.principal = principal
	return nil
}

func (a *orderAction) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	a.orderID = orderID
	return nil
}
