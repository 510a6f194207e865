package kernel_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "valid location", lat: 12.97, lng: 77.59},
		{name: "min bounds", lat: kernel.LatitudeMin, lng: kernel.LongitudeMin},
		{name: "max bounds", lat: kernel.LatitudeMax, lng: kernel.LongitudeMax},
		{name: "latitude too small", lat: -90.0001, lng: 0, wantErr: true},
		{name: "latitude too large", lat: 90.5, lng: 0, wantErr: true},
		{name: "longitude too small", lat: 0, lng: -180.1, wantErr: true},
		{name: "longitude too large", lat: 0, lng: 181, wantErr: true},
		{name: "latitude NaN", lat: math.NaN(), lng: 0, wantErr: true},
		{name: "longitude infinite", lat: 0, lng: math.Inf(1), wantErr: true},
		{name: "both invalid", lat: 100, lng: 200, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.lat, tt.lng)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, loc)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.lat, loc.Lat(), 0)
			assert.InDelta(t, tt.lng, loc.Lng(), 0)
			assert.NoError(t, loc.Validate())
		})
	}
}

func TestNewLocation_ReportsBothAxes(t *testing.T) {
	_, err := kernel.NewLocation(100, 200)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
	assert.Contains(t, err.Error(), "longitude")
}

func TestLocation_Validate(t *testing.T) {
	var loc kernel.Location
	assert.Equal(t, kernel.ErrLocationIsNotConstructed, loc.Validate())
}

func TestLocation_PointIsLatitudeFirst(t *testing.T) {
	loc := mustNewLocation(t, 12.5, 77.25)

	assert.Equal(t, orb.Point{12.5, 77.25}, loc.Point())
	assert.Equal(t, "Location(12.5,77.25)", loc.String())
}

func TestLocation_IsEqual(t *testing.T) {
	t.Run("equal and different", func(t *testing.T) {
		equal, err := mustNewLocation(t, 1, 2).IsEqual(mustNewLocation(t, 1, 2))
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = mustNewLocation(t, 1, 2).IsEqual(mustNewLocation(t, 2, 1))
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		_, err := mustNewLocation(t, 1, 2).IsEqual(kernel.Location{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func mustNewLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}
