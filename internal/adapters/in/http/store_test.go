package http_test

import (
	"context"
	"sort"
	"sync"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/model/zone"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// memStore keeps aggregates in maps and satisfies every repository port.
// Transactions are no-ops.
type memStore struct {
	mu       sync.Mutex
	zones    map[kernel.UUID]*zone.Zone
	vehicles map[kernel.UUID]*vehicle.Vehicle
	orders   map[kernel.UUID]*order.Order
}

func newMemStore() *memStore {
	return &memStore{
		zones:    make(map[kernel.UUID]*zone.Zone),
		vehicles: make(map[kernel.UUID]*vehicle.Vehicle),
		orders:   make(map[kernel.UUID]*order.Order),
	}
}

func (s *memStore) Begin(context.Context) error { return nil }
func (s *memStore) Commit(context.Context) error { return nil }
func (s *memStore) Rollback(context.Context) error { return nil }

func (s *memStore) ZoneRepository() ports.ZoneRepository { return memZones{s} }
func (s *memStore) VehicleRepository() ports.VehicleRepository { return memVehicles{s} }
func (s *memStore) OrderRepository() ports.OrderRepository { return memOrders{s} }

type (
	orderUoWs struct{ s *memStore }
	fleetUoWs struct{ s *memStore }
	readRepos struct{ s *memStore }
)

func (f orderUoWs) Create() commands.UoW { return f.s }
func (f fleetUoWs) Create() commands.FleetUoW { return f.s }
func (f readRepos) Create() queries.Repositories { return f.s }

type memZones struct{ s *memStore }

func (r memZones) Add(_ context.Context, z *zone.Zone) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.zones {
		if other.Name() == z.Name() {
			return errs.NewAlreadyExistsError("name", z.Name())
		}
	}
	r.s.zones[z.ID()] = z
	return nil
}

func (r memZones) Get(_ context.Context, id kernel.UUID) (*zone.Zone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	z, ok := r.s.zones[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("zoneID", id)
	}
	return z, nil
}

func (r memZones) GetForShare(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.Get(ctx, id)
}

func (r memZones) ListAll(context.Context) ([]*zone.Zone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*zone.Zone, 0, len(r.s.zones))
	for _, z := range r.s.zones {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func (r memZones) Delete(ctx context.Context, id kernel.UUID) error {
	n, _ := r.CountVehicles(ctx, id)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.zones[id]; !ok {
		return errs.NewObjectNotFoundError("zoneID", id)
	}
	if n > 0 {
		return errs.NewDependentsExistError("zone", id, "vehicles", n)
	}
	delete(r.s.zones, id)
	return nil
}

func (r memZones) CountVehicles(_ context.Context, id kernel.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, v := range r.s.vehicles {
		if zid := v.ZoneID(); zid != nil && zid.IsEqual(id) {
			n++
		}
	}
	return n, nil
}

type memVehicles struct{ s *memStore }

func (r memVehicles) Add(_ context.Context, v *vehicle.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.vehicles {
		if other.Number() == v.Number() {
			return errs.NewAlreadyExistsError("vehicleNumber", v.Number())
		}
	}
	r.s.vehicles[v.ID()] = v
	return nil
}

func (r memVehicles) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.vehicles[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("vehicleID", id)
	}
	return v, nil
}

func (r memVehicles) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.Get(ctx, id)
}

func (r memVehicles) Update(_ context.Context, v *vehicle.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.vehicles[v.ID()]; !ok {
		return errs.NewObjectNotFoundError("vehicleID", v.ID())
	}
	r.s.vehicles[v.ID()] = v
	return nil
}

func (r memVehicles) ListAll(context.Context) ([]*vehicle.Vehicle, error) {
	return r.list(func(*vehicle.Vehicle) bool { return true }), nil
}

func (r memVehicles) ListByZone(_ context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error) {
	return r.list(func(v *vehicle.Vehicle) bool {
		zid := v.ZoneID()
		return zid != nil && zid.IsEqual(zoneID)
	}), nil
}

func (r memVehicles) ListByZoneForUpdate(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error) {
	return r.ListByZone(ctx, zoneID)
}

func (r memVehicles) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.vehicles[id]; !ok {
		return errs.NewObjectNotFoundError("vehicleID", id)
	}
	var referencing int64
	for _, o := range r.s.orders {
		if vid := o.VehicleID(); vid != nil && vid.IsEqual(id) && o.Status() != order.Cancelled {
			referencing++
		}
	}
	if referencing > 0 {
		return errs.NewDependentsExistError("vehicle", id, "orders", referencing)
	}
	delete(r.s.vehicles, id)
	return nil
}

func (r memVehicles) list(keep func(*vehicle.Vehicle) bool) []*vehicle.Vehicle {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*vehicle.Vehicle, 0)
	for _, v := range r.s.vehicles {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

type memOrders struct{ s *memStore }

func (r memOrders) Add(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID()] = o
	return nil
}

func (r memOrders) Update(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("orderID", o.ID())
	}
	r.s.orders[o.ID()] = o
	return nil
}

func (r memOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return o, nil
}

func (r memOrders) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r memOrders) ListByRequester(_ context.Context, requesterID kernel.UUID) ([]*order.Order, error) {
	return r.list(func(o *order.Order) bool { return o.RequesterID().IsEqual(requesterID) }), nil
}

func (r memOrders) ListAll(context.Context) ([]*order.Order, error) {
	return r.list(func(*order.Order) bool { return true }), nil
}

func (r memOrders) ListByDriver(_ context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	r.s.mu.Lock()
	driven := make(map[kernel.UUID]bool)
	for id, v := range r.s.vehicles {
		driven[id] = v.IsDrivenBy(driverID)
	}
	r.s.mu.Unlock()

	return r.list(func(o *order.Order) bool {
		vid := o.VehicleID()
		return vid != nil && driven[*vid]
	}), nil
}

func (r memOrders) CountActiveByVehicle(_ context.Context, vehicleID kernel.UUID) (int64, error) {
	return int64(len(r.list(func(o *order.Order) bool {
		vid := o.VehicleID()
		return vid != nil && vid.IsEqual(vehicleID) && !o.Status().IsTerminal()
	}))), nil
}

func (r memOrders) list(keep func(*order.Order) bool) []*order.Order {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*order.Order, 0)
	for _, o := range r.s.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out
}
