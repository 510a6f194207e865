package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/policy"
)

var ErrListDriverOrdersQueryIsNotConstructed = errors.New(
	"ListDriverOrdersQuery must be created via NewListDriverOrdersQuery constructor",
)

// ListDriverOrdersQuery lists the orders assigned to vehicles the calling
// driver drives, in every status.
type ListDriverOrdersQuery struct {
	principalQuery
}

func NewListDriverOrdersQuery(principal policy.Principal) (ListDriverOrdersQuery, error) {
	q, err := newPrincipalQuery(principal)
	if err != nil {
		return ListDriverOrdersQuery{}, err
	}
	return ListDriverOrdersQuery{principalQuery: q}, nil
}

func (q ListDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListDriverOrdersQueryIsNotConstructed)
}
