// Package policy decides who may do what to orders and the fleet.
//
// Every predicate returns nil when the action is allowed and a
// *errs.ForbiddenError otherwise. Command handlers consult the policy before
// touching any state.
package policy

import (
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"
)

type Policy struct{}

func New() Policy {
	return Policy{}
}

func (Policy) CanCreateOrder(p Principal) error {
	if p.IsRequester() || p.IsAdmin() {
		return nil
	}
	return errs.NewForbiddenError("create order")
}

func (Policy) CanAssign(p Principal) error {
	return adminOnly(p, "assign order")
}

func (Policy) CanUnassign(p Principal) error {
	return adminOnly(p, "unassign order")
}

func (Policy) CanAdminCancel(p Principal) error {
	return adminOnly(p, "cancel order as admin")
}

func (Policy) CanManageFleet(p Principal) error {
	return adminOnly(p, "manage fleet")
}

// CanCancel allows the requester who placed the order.
func (Policy) CanCancel(p Principal, o *order.Order) error {
	if p.IsRequester() && o != nil && o.RequesterID().IsEqual(p.UserID) {
		return nil
	}
	return errs.NewForbiddenError("cancel order")
}

// CanStartShipment allows the driver of the assigned vehicle. v is nil when
// the order has no vehicle.
func (Policy) CanStartShipment(p Principal, v *vehicle.Vehicle) error {
	if p.IsDriver() && v != nil && v.IsDrivenBy(p.UserID) {
		return nil
	}
	return errs.NewForbiddenError("start shipment")
}

// CanConfirm resolves which side of the handover p represents.
func (Policy) CanConfirm(p Principal, o *order.Order, v *vehicle.Vehicle) (order.Party, error) {
	switch {
	case p.IsDriver() && v != nil && v.IsDrivenBy(p.UserID):
		return order.PartyDriver, nil
	case p.IsRequester() && o != nil && o.RequesterID().IsEqual(p.UserID):
		return order.PartyRequester, nil
	default:
		return 0, errs.NewForbiddenError("confirm delivery")
	}
}

func (Policy) CanViewOrder(p Principal, o *order.Order, v *vehicle.Vehicle) error {
	switch {
	case p.IsAdmin():
		return nil
	case p.IsRequester() && o != nil && o.RequesterID().IsEqual(p.UserID):
		return nil
	case p.IsDriver() && v != nil && v.IsDrivenBy(p.UserID):
		return nil
	default:
		return errs.NewForbiddenError("view order")
	}
}

// CanListOrders allows admins (every order) and requesters (their own).
func (Policy) CanListOrders(p Principal) error {
	if p.IsAdmin() || p.IsRequester() {
		return nil
	}
	return errs.NewForbiddenError("list orders")
}

func (Policy) CanListDriverOrders(p Principal) error {
	if p.IsDriver() {
		return nil
	}
	return errs.NewForbiddenError("list driver orders")
}

func adminOnly(p Principal, action string) error {
	if p.IsAdmin() {
		return nil
	}
	return errs.NewForbiddenError(action)
}
