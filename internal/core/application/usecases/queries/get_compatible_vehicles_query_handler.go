package queries

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// Repositories is the read-only view of a unit of work.
type Repositories interface {
	ZoneRepository() ports.ZoneRepository
	VehicleRepository() ports.VehicleRepository
	OrderRepository() ports.OrderRepository
}

type RepositoriesFactory interface {
	Create() Repositories
}

type GetCompatibleVehiclesQueryHandler struct {
	repos    RepositoriesFactory
	geofence *services.GeofenceIndex
	matcher  services.CapacityMatcher
	policy   policy.Policy
}

func NewGetCompatibleVehiclesQueryHandler(
	repos RepositoriesFactory,
	geofence *services.GeofenceIndex,
	matcher services.CapacityMatcher,
) GetCompatibleVehiclesQueryHandler {
	return GetCompatibleVehiclesQueryHandler{
		repos:    repos,
		geofence: geofence,
		matcher:  matcher,
		policy:   policy.New(),
	}
}

// Handle resolves the drop coordinate against every zone and accumulates the
// vehicles of all containing zones that fit the parcel under the configured
// capacity policy. An order without a drop coordinate has no candidates.
func (h GetCompatibleVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetCompatibleVehiclesQuery,
) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repos := h.repos.Create()

	o, err := repos.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	var assigned *vehicle.Vehicle
	if id := o.VehicleID(); id != nil {
		assigned, err = repos.VehicleRepository().Get(ctx, *id)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	if err = h.policy.CanViewOrder(query.Principal(), o, assigned); err != nil {
		return nil, err
	}

	views := make([]VehicleView, 0)

	drop := o.Drop()
	if drop == nil {
		return views, nil
	}

	zones, err := repos.ZoneRepository().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, z := range h.geofence.ResolveAll(*drop, zones) {
		vehicles, listErr := repos.VehicleRepository().ListByZone(ctx, z.ID())
		if listErr != nil {
			return nil, listErr
		}
		for _, v := range h.matcher.MatchAllFor(o, vehicles) {
			views = append(views, NewVehicleView(v))
		}
	}

	return views, nil
}
