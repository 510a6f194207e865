package services_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/model/zone"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newZone(t *testing.T, name string, offset time.Duration, pairs [][]float64) *zone.Zone {
	t.Helper()
	b, err := zone.NewBoundary(pairs)
	require.NoError(t, err)
	z, err := zone.NewZone(kernel.NewUUID(), name, b, epoch.Add(offset))
	require.NoError(t, err)
	return z
}

func brokenZone(t *testing.T, name string, offset time.Duration) *zone.Zone {
	t.Helper()
	z, err := zone.RestoreZone(kernel.NewUUID(), name, `[[0,0],[0,10]]`, epoch.Add(offset))
	require.NoError(t, err)
	return z
}

func newVehicle(t *testing.T, number string, offset time.Duration, weightKg, volumeM3 float64) *vehicle.Vehicle {
	t.Helper()
	capacity, err := kernel.NewLoad(weightKg, volumeM3)
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), number, capacity, nil, nil, epoch.Add(offset))
	require.NoError(t, err)
	return v
}

func newOrder(t *testing.T, weightKg float64) *order.Order {
	t.Helper()
	dims, err := kernel.NewDimensions(100, 50, 20)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		order.Parcel{Dimensions: dims, WeightKg: weightKg},
		order.Route{Pickup: loc(t, 1, 1)}, epoch)
	require.NoError(t, err)
	return o
}

func loc(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return l
}

func demand(t *testing.T, weightKg, volumeM3 float64) kernel.Load {
	t.Helper()
	l, err := kernel.NewLoad(weightKg, volumeM3)
	require.NoError(t, err)
	return l
}
