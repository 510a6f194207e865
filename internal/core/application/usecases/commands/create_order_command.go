package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new delivery request. The parcel and route are
// already validated value objects; the requester is the acting principal.
//
//	cmd, err := NewCreateOrderCommand(principal, parcel, route)
//	created, err := handler.Handle(ctx, cmd)
//	// created.Status() is ASSIGNED or PENDING
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal policy.Principal
	parcel    order.Parcel
	route     order.Route

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	principal policy.Principal,
	parcel order.Parcel,
	route order.Route,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setParcel(parcel),
		cmd.setRoute(route),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Principal() policy.Principal {
	return c.principal
}

func (c CreateOrderCommand) Parcel() order.Parcel {
	return c.parcel
}

func (c CreateOrderCommand) Route() order.Route {
	return c.route
}

func (c *CreateOrderCommand) setPrincipal(principal policy.Principal) error {
	if err := principal.UserID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("principal", err)
	}

	c.principal = principal
	return nil
}

func (c *CreateOrderCommand) setParcel(parcel order.Parcel) error {
	if err := parcel.Dimensions.Validate(); err != nil {
		return err
	}

	c.parcel = parcel
	return nil
}

func (c *CreateOrderCommand) setRoute(route order.Route) error {
	if err := route.Pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}

	c.route = route
	return nil
}
