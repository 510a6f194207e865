package commands_test

import (
	"errors"
	"testing"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/model/zone"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newCreateOrderHandler(uow *MockUoW, recorder commands.MetricsRecorder, logger *zap.Logger) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		uowFactory{uow},
		services.NewGeofenceIndex(logger, nil),
		services.NewOrderDispatcher(services.NewCapacityMatcher(services.CapacityCommitted)),
		recorder,
		logger,
		fixedClock,
	)
}

func createOrderCommand(t *testing.T, p policy.Principal, lat, lng float64) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(p, parcel(t), order.Route{Pickup: location(t, lat, lng)})
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_AssignsInsideZone(t *testing.T) {
	ctx := t.Context()
	requester := principal(t, policy.RoleRequester)
	z := squareZone(t, "central")
	v := newVehicle(t, "KA-01", load(t, 1000, 100), z.ID().Ptr(), nil)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.zones.On("ListAll", ctx).Return([]*zone.Zone{z}, nil).Once()
	uow.vehicles.On("ListByZoneForUpdate", ctx, z.ID()).Return([]*vehicle.Vehicle{v}, nil).Once()
	uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.vehicles.On("Update", ctx, v).Return(nil).Once()

	recorder := new(MockRecorder)
	recorder.On("AssignmentOutcome", commands.OutcomeAssigned).Once()
	recorder.On("OrderTransition", order.EventAssign).Once()

	core, logs := observer.New(zap.InfoLevel)
	handler := newCreateOrderHandler(uow, recorder, zap.New(core))

	created, err := handler.Handle(ctx, createOrderCommand(t, requester, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, order.Assigned, created.Status())
	require.NotNil(t, created.VehicleID())
	assert.Equal(t, v.ID(), *created.VehicleID())
	assert.Equal(t, requester.UserID, created.RequesterID())
	assert.True(t, epoch.Equal(created.CreatedAt()))
	assert.InDelta(t, 5.0, v.Committed().WeightKg(), 1e-12)
	assert.InDelta(t, 0.1, v.Committed().VolumeM3(), 1e-12)

	entries := logs.FilterMessage("order created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "assigned", entries[0].ContextMap()["outcome"])

	uow.assertAll(t)
	recorder.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_OutsideEveryZoneStaysPending(t *testing.T) {
	ctx := t.Context()
	z := squareZone(t, "central")

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.zones.On("ListAll", ctx).Return([]*zone.Zone{z}, nil).Once()
	uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	recorder := new(MockRecorder)
	recorder.On("AssignmentOutcome", commands.OutcomeNoZone).Once()

	created, err := newCreateOrderHandler(uow, recorder, zap.NewNop()).
		Handle(ctx, createOrderCommand(t, principal(t, policy.RoleRequester), 50, 50))
	require.NoError(t, err)

	assert.Equal(t, order.Pending, created.Status())
	assert.Nil(t, created.VehicleID())
	uow.vehicles.AssertNotCalled(t, "ListByZoneForUpdate", mock.Anything, mock.Anything)
	uow.assertAll(t)
	recorder.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoFittingVehicleStaysPending(t *testing.T) {
	ctx := t.Context()
	z := squareZone(t, "central")
	small := newVehicle(t, "KA-01", load(t, 1, 100), z.ID().Ptr(), nil)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.zones.On("ListAll", ctx).Return([]*zone.Zone{z}, nil).Once()
	uow.vehicles.On("ListByZoneForUpdate", ctx, z.ID()).Return([]*vehicle.Vehicle{small}, nil).Once()
	uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	recorder := new(MockRecorder)
	recorder.On("AssignmentOutcome", commands.OutcomeNoVehicle).Once()

	created, err := newCreateOrderHandler(uow, recorder, zap.NewNop()).
		Handle(ctx, createOrderCommand(t, principal(t, policy.RoleRequester), 1, 1))
	require.NoError(t, err)

	assert.Equal(t, order.Pending, created.Status())
	assert.True(t, small.Committed().IsZero())
	uow.vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.assertAll(t)
	recorder.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DriverIsForbidden(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()

	_, err := newCreateOrderHandler(uow, nil, zap.NewNop()).
		Handle(ctx, createOrderCommand(t, principal(t, policy.RoleDriver), 1, 1))

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_PersistFailureIsNotCommitted(t *testing.T) {
	ctx := t.Context()
	storeErr := errors.New("connection reset")

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.zones.On("ListAll", ctx).Return([]*zone.Zone{}, nil).Once()
	uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(storeErr).Once()

	recorder := new(MockRecorder)

	_, err := newCreateOrderHandler(uow, recorder, zap.NewNop()).
		Handle(ctx, createOrderCommand(t, principal(t, policy.RoleRequester), 1, 1))

	require.ErrorIs(t, err, storeErr)
	uow.assertAll(t)
	recorder.AssertNotCalled(t, "AssignmentOutcome", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	_, err := newCreateOrderHandler(newMockUoW(), nil, nil).Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
