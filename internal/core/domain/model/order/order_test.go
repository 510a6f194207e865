package order_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order with derived volume", func(t *testing.T) {
		id := kernel.NewUUID()
		requester := kernel.NewUUID()

		o, err := order.NewOrder(id, requester, newParcel(t, 5), newRoute(t, 1, 1, nil), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, id.IsEqual(o.ID()))
		assert.True(t, requester.IsEqual(o.RequesterID()))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.VehicleID())
		assert.Nil(t, o.Drop())
		assert.Equal(t, 0.1, o.VolumeM3()) //nolint:testifylint // exact arithmetic is the contract
		assert.InDelta(t, 5.0, o.Demand().WeightKg(), 0)
		assert.Equal(t, "Books", o.ItemName())
		assert.False(t, o.DriverConfirmed())
		assert.False(t, o.RequesterConfirmed())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should keep an optional drop point", func(t *testing.T) {
		drop := mustLocation(t, 2, 2)

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), newParcel(t, 5), newRoute(t, 1, 1, &drop), createdAt)

		require.NoError(t, err)
		require.NotNil(t, o.Drop())
		assert.InDelta(t, 2.0, o.Drop().Lat(), 0)
		assert.Equal(t, "Drop street", o.DropAddress())
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		parcel := order.Parcel{ItemName: "x", WeightKg: 0}

		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, parcel, order.Route{}, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "requesterID")
		assert.Contains(t, err.Error(), "pickup")
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should reject non positive weight", func(t *testing.T) {
		parcel := newParcel(t, 5)
		parcel.WeightKg = -1

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), parcel, newRoute(t, 1, 1, nil), createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "weightKg")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}

func TestRestoreOrder(t *testing.T) {
	vehicle := kernel.NewUUID()

	t.Run("should restore a shipped order with confirmations", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), newParcel(t, 5), newRoute(t, 1, 1, nil),
			order.State{Status: order.Shipped, VehicleID: &vehicle, DriverConfirmed: true}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.True(t, vehicle.IsEqual(*o.VehicleID()))
		assert.True(t, o.DriverConfirmed())
		assert.False(t, o.RequesterConfirmed())
	})

	t.Run("should reject a vehicle on a pending order", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), newParcel(t, 5), newRoute(t, 1, 1, nil),
			order.State{Status: order.Pending, VehicleID: &vehicle}, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an assigned order without a vehicle", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), newParcel(t, 5), newRoute(t, 1, 1, nil),
			order.State{Status: order.Assigned}, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), newParcel(t, 5), newRoute(t, 1, 1, nil),
			order.State{Status: order.Unknown}, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AssignAndUnassign(t *testing.T) {
	o := newOrder(t)
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	require.NoError(t, o.Assign(first))
	assert.Equal(t, order.Assigned, o.Status())
	assert.True(t, first.IsEqual(*o.VehicleID()))

	require.NoError(t, o.Assign(second), "reassignment is allowed")
	assert.True(t, second.IsEqual(*o.VehicleID()))

	require.NoError(t, o.Unassign())
	assert.Equal(t, order.Pending, o.Status())
	assert.Nil(t, o.VehicleID())

	err := o.Unassign()
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, order.Pending, o.Status())

	require.ErrorIs(t, o.Assign(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
}

func TestOrder_VehicleIDIsACopy(t *testing.T) {
	o := newOrder(t)
	vehicle := kernel.NewUUID()
	require.NoError(t, o.Assign(vehicle))

	ref := o.VehicleID()
	*ref = kernel.NewUUID()

	assert.True(t, vehicle.IsEqual(*o.VehicleID()))
}

func TestOrder_Ship(t *testing.T) {
	o := newOrder(t)

	err := o.Ship()
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, order.Pending, o.Status())

	require.NoError(t, o.Assign(kernel.NewUUID()))
	require.NoError(t, o.Ship())
	assert.Equal(t, order.Shipped, o.Status())

	require.ErrorIs(t, o.Ship(), errs.ErrPreconditionFailed)
}

func TestOrder_ConfirmDelivery(t *testing.T) {
	shipped := func(t *testing.T) *order.Order {
		t.Helper()
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Ship())
		return o
	}

	t.Run("driver then requester delivers once", func(t *testing.T) {
		o := shipped(t)

		delivered, err := o.ConfirmDelivery(order.PartyDriver)
		require.NoError(t, err)
		assert.False(t, delivered)
		assert.Equal(t, order.Shipped, o.Status())

		delivered, err = o.ConfirmDelivery(order.PartyRequester)
		require.NoError(t, err)
		assert.True(t, delivered)
		assert.Equal(t, order.Delivered, o.Status())

		delivered, err = o.ConfirmDelivery(order.PartyRequester)
		require.NoError(t, err)
		assert.False(t, delivered, "repeat confirmation after delivery is a no-op")
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("requester then driver delivers once", func(t *testing.T) {
		o := shipped(t)

		delivered, err := o.ConfirmDelivery(order.PartyRequester)
		require.NoError(t, err)
		assert.False(t, delivered)

		delivered, err = o.ConfirmDelivery(order.PartyRequester)
		require.NoError(t, err)
		assert.False(t, delivered, "double confirmation by one party is a no-op")
		assert.Equal(t, order.Shipped, o.Status())

		delivered, err = o.ConfirmDelivery(order.PartyDriver)
		require.NoError(t, err)
		assert.True(t, delivered)
		assert.True(t, o.DriverConfirmed())
		assert.True(t, o.RequesterConfirmed())
	})

	t.Run("confirmation requires a shipped order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		_, err := o.ConfirmDelivery(order.PartyDriver)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.False(t, o.DriverConfirmed())
	})

	t.Run("unknown party is rejected", func(t *testing.T) {
		_, err := shipped(t).ConfirmDelivery(order.Party(0))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order can be cancelled", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("any non pending order cannot be cancelled", func(t *testing.T) {
		assigned := newOrder(t)
		require.NoError(t, assigned.Assign(kernel.NewUUID()))

		shipped := newOrder(t)
		require.NoError(t, shipped.Assign(kernel.NewUUID()))
		require.NoError(t, shipped.Ship())

		cancelled := newOrder(t)
		require.NoError(t, cancelled.Cancel())

		for _, o := range []*order.Order{assigned, shipped, cancelled} {
			before := o.Status()
			require.ErrorIs(t, o.Cancel(), errs.ErrPreconditionFailed)
			assert.Equal(t, before, o.Status())
		}
	})
}

func TestOrder_AdminCancel(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.Assign(kernel.NewUUID()))

	require.NoError(t, o.AdminCancel())
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Nil(t, o.VehicleID())

	shipped := newOrder(t)
	require.NoError(t, shipped.Assign(kernel.NewUUID()))
	require.NoError(t, shipped.Ship())
	require.ErrorIs(t, shipped.AdminCancel(), errs.ErrPreconditionFailed)
	assert.NotNil(t, shipped.VehicleID())
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), newParcel(t, 5), newRoute(t, 1, 1, nil), createdAt)
	require.NoError(t, err)
	return o
}

func newParcel(t *testing.T, weightKg float64) order.Parcel {
	t.Helper()
	dims, err := kernel.NewDimensions(100, 50, 20)
	require.NoError(t, err)
	return order.Parcel{ItemName: " Books ", Dimensions: dims, WeightKg: weightKg}
}

func newRoute(t *testing.T, lat, lng float64, drop *kernel.Location) order.Route {
	t.Helper()
	route := order.Route{Pickup: mustLocation(t, lat, lng), PickupAddress: "Pickup street"}
	if drop != nil {
		route.Drop = drop
		route.DropAddress = "Drop street"
	}
	return route
}

func mustLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}
