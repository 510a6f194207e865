package commands_test

import (
	"context"
	"testing"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/model/zone"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return epoch }

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	return m.Called(ctx, z).Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetForShare(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) ListAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockZoneRepository) CountVehicles(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return vehicleResult(m.Called(ctx, id))
}

func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return vehicleResult(m.Called(ctx, id))
}

func (m *MockVehicleRepository) ListAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	return vehiclesResult(m.Called(ctx))
}

func (m *MockVehicleRepository) ListByZone(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error) {
	return vehiclesResult(m.Called(ctx, zoneID))
}

func (m *MockVehicleRepository) ListByZoneForUpdate(
	ctx context.Context,
	zoneID kernel.UUID,
) ([]*vehicle.Vehicle, error) {
	return vehiclesResult(m.Called(ctx, zoneID))
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func vehicleResult(args mock.Arguments) (*vehicle.Vehicle, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func vehiclesResult(args mock.Arguments) ([]*vehicle.Vehicle, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return orderResult(m.Called(ctx, id))
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return orderResult(m.Called(ctx, id))
}

func (m *MockOrderRepository) ListByRequester(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	return ordersResult(m.Called(ctx, id))
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return ordersResult(m.Called(ctx))
}

func (m *MockOrderRepository) ListByDriver(ctx context.Context, id kernel.UUID) ([]*order.Order, error) {
	return ordersResult(m.Called(ctx, id))
}

func (m *MockOrderRepository) CountActiveByVehicle(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func orderResult(args mock.Arguments) (*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func ordersResult(args mock.Arguments) ([]*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockUoW serves both commands.UoW and commands.FleetUoW.
type MockUoW struct {
	mock.Mock
	zones    *MockZoneRepository
	vehicles *MockVehicleRepository
	orders   *MockOrderRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		zones:    new(MockZoneRepository),
		vehicles: new(MockVehicleRepository),
		orders:   new(MockOrderRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository       { return m.zones }
func (m *MockUoW) VehicleRepository() ports.VehicleRepository { return m.vehicles }
func (m *MockUoW) OrderRepository() ports.OrderRepository     { return m.orders }

// expectTx expects a transaction that is committed (when commit is true) and
// always rolled back by the deferred call.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Once()
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.zones.AssertExpectations(t)
	m.vehicles.AssertExpectations(t)
	m.orders.AssertExpectations(t)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type fleetUoWFactory struct{ uow *MockUoW }

func (f fleetUoWFactory) Create() commands.FleetUoW { return f.uow }

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) AssignmentOutcome(outcome commands.Outcome) {
	m.Called(outcome)
}

func (m *MockRecorder) OrderTransition(event order.Event) {
	m.Called(event)
}

func principal(t *testing.T, role policy.Role) policy.Principal {
	t.Helper()
	p, err := policy.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func location(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}

func load(t *testing.T, weightKg, volumeM3 float64) kernel.Load {
	t.Helper()
	l, err := kernel.NewLoad(weightKg, volumeM3)
	require.NoError(t, err)
	return l
}

func squareZone(t *testing.T, name string) *zone.Zone {
	t.Helper()
	boundary, err := zone.NewBoundary([][]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}})
	require.NoError(t, err)
	z, err := zone.NewZone(kernel.NewUUID(), name, boundary, epoch)
	require.NoError(t, err)
	return z
}

func newVehicle(t *testing.T, number string, capacity kernel.Load, zoneID, driverID *kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), number, capacity, zoneID, driverID, epoch)
	require.NoError(t, err)
	return v
}

// parcel is 100x50x20 cm (0.1 m³) weighing 5 kg.
func parcel(t *testing.T) order.Parcel {
	t.Helper()
	dims, err := kernel.NewDimensions(100, 50, 20)
	require.NoError(t, err)
	return order.Parcel{ItemName: "books", Dimensions: dims, WeightKg: 5}
}

func pendingOrder(t *testing.T, requesterID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), requesterID, parcel(t), order.Route{Pickup: location(t, 1, 1)}, epoch,
	)
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, requesterID kernel.UUID, v *vehicle.Vehicle) *order.Order {
	t.Helper()
	o := pendingOrder(t, requesterID)
	require.NoError(t, o.Assign(v.ID()))
	v.Commit(o.Demand())
	return o
}

func shippedOrder(t *testing.T, requesterID kernel.UUID, v *vehicle.Vehicle) *order.Order {
	t.Helper()
	o := assignedOrder(t, requesterID, v)
	require.NoError(t, o.Ship())
	return o
}
