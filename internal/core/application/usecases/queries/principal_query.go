// Package queries contains the read side. Handlers read straight from the
// database into view models; only the compatible-vehicles query goes through
// the aggregates because it needs the geofence and the capacity matcher.
package queries

import (
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

// principalQuery is embedded by every query; reads are authorized like writes.
type principalQuery struct {
	principal policy.Principal

	guard guard.ConstructorGuard
}

func newPrincipalQuery(principal policy.Principal) (principalQuery, error) {
	if err := principal.UserID.Validate(); err != nil {
		return principalQuery{}, errs.NewValueIsRequiredErrorWithCause("principal", err)
	}
	return principalQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q principalQuery) Principal() policy.Principal {
	return q.principal
}
