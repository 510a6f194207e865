package services

import (
	"slices"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/zone"

	"go.uber.org/zap"
)

// ZoneSkipRecorder is told about every zone left out of resolution because
// its geometry could not be parsed.
type ZoneSkipRecorder interface {
	ZoneSkipped()
}

// GeofenceIndex resolves a coordinate to the zone that contains it.
//
// Zones are visited in creation order, ties broken by id, so overlapping
// zones always resolve to the same winner. A zone with unusable geometry is
// logged, recorded and skipped; it never fails the lookup.
type GeofenceIndex struct {
	logger   *zap.Logger
	recorder ZoneSkipRecorder
}

// NewGeofenceIndex accepts a nil recorder.
func NewGeofenceIndex(logger *zap.Logger, recorder ZoneSkipRecorder) *GeofenceIndex {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeofenceIndex{logger: logger, recorder: recorder}
}

// Resolve returns the first zone containing point, or nil.
func (g *GeofenceIndex) Resolve(point kernel.Location, zones []*zone.Zone) *zone.Zone {
	var found *zone.Zone
	g.walk(point, zones, func(z *zone.Zone) bool {
		found = z
		return false
	})
	return found
}

// ResolveAll returns every zone containing point in enumeration order.
func (g *GeofenceIndex) ResolveAll(point kernel.Location, zones []*zone.Zone) []*zone.Zone {
	var found []*zone.Zone
	g.walk(point, zones, func(z *zone.Zone) bool {
		found = append(found, z)
		return true
	})
	return found
}

func (g *GeofenceIndex) walk(point kernel.Location, zones []*zone.Zone, visit func(*zone.Zone) bool) {
	if point.Validate() != nil {
		return
	}

	for _, z := range ordered(zones) {
		boundary, err := z.Boundary()
		if err != nil {
			g.logger.Warn("skipping zone with invalid geometry",
				zap.String("zone_id", z.ID().String()),
				zap.String("zone_name", z.Name()),
				zap.Error(err))
			if g.recorder != nil {
				g.recorder.ZoneSkipped()
			}
			continue
		}

		if boundary.Contains(point) && !visit(z) {
			return
		}
	}
}

func ordered(zones []*zone.Zone) []*zone.Zone {
	sorted := make([]*zone.Zone, 0, len(zones))
	for _, z := range zones {
		if z.Validate() == nil {
			sorted = append(sorted, z)
		}
	}
	slices.SortStableFunc(sorted, func(a, b *zone.Zone) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})
	return sorted
}
