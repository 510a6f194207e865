package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/policy"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders newest first: every order for an admin, the
// requester's own orders otherwise.
type ListOrdersQuery struct {
	principalQuery
}

func NewListOrdersQuery(principal policy.Principal) (ListOrdersQuery, error) {
	q, err := newPrincipalQuery(principal)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{principalQuery: q}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
