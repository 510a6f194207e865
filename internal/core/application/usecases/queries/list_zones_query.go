package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/policy"
)

var ErrListZonesQueryIsNotConstructed = errors.New(
	"ListZonesQuery must be created via NewListZonesQuery constructor",
)

type ListZonesQuery struct {
	principalQuery
}

func NewListZonesQuery(principal policy.Principal) (ListZonesQuery, error) {
	q, err := newPrincipalQuery(principal)
	if err != nil {
		return ListZonesQuery{}, err
	}
	return ListZonesQuery{principalQuery: q}, nil
}

func (q ListZonesQuery) Validate() error {
	return q.guard.Validate(ErrListZonesQueryIsNotConstructed)
}
