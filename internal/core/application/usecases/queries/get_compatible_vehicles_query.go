package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/policy"
)

var ErrGetCompatibleVehiclesQueryIsNotConstructed = errors.New(
	"GetCompatibleVehiclesQuery must be created via NewGetCompatibleVehiclesQuery constructor",
)

// GetCompatibleVehiclesQuery finds every vehicle that could carry the order
// to its drop coordinate. It never changes the order.
type GetCompatibleVehiclesQuery struct {
	principalQuery
	orderID kernel.UUID
}

func NewGetCompatibleVehiclesQuery(principal policy.Principal, orderID kernel.UUID) (GetCompatibleVehiclesQuery, error) {
	q, principalErr := newPrincipalQuery(principal)
	if err := errors.Join(principalErr, orderID.Validate()); err != nil {
		return GetCompatibleVehiclesQuery{}, err
	}
	return GetCompatibleVehiclesQuery{principalQuery: q, orderID: orderID}, nil
}

func (q GetCompatibleVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompatibleVehiclesQueryIsNotConstructed)
}

func (q GetCompatibleVehiclesQuery) OrderID() kernel.UUID {
	return q.orderID
}
