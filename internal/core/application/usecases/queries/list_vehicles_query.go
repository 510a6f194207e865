package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/policy"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

type ListVehiclesQuery struct {
	principalQuery
}

func NewListVehiclesQuery(principal policy.Principal) (ListVehiclesQuery, error) {
	q, err := newPrincipalQuery(principal)
	if err != nil {
		return ListVehiclesQuery{}, err
	}
	return ListVehiclesQuery{principalQuery: q}, nil
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}
