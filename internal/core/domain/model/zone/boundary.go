package zone

import (
	"encoding/json"
	"errors"
	"fmt"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const MinVertices = 3

// Boundary is a simple polygon ring in (latitude, longitude) order.
// The ring does not need to repeat its first vertex.
type Boundary struct {
	ring orb.Ring
}

// NewBoundary validates a list of [lat, lng] pairs.
func NewBoundary(pairs [][]float64) (Boundary, error) {
	if len(pairs) < MinVertices {
		return Boundary{}, errs.NewValueIsInvalidErrorWithCause(
			"boundary", fmt.Errorf("need at least %d vertices, got %d", MinVertices, len(pairs)))
	}

	ring := make(orb.Ring, 0, len(pairs)+1)
	for i, p := range pairs {
		if len(p) != 2 {
			return Boundary{}, errs.NewValueIsInvalidErrorWithCause(
				"boundary", fmt.Errorf("vertex %d has %d components, want 2", i, len(p)))
		}
		if _, err := kernel.NewLocation(p[0], p[1]); err != nil {
			return Boundary{}, errs.NewValueIsInvalidErrorWithCause("boundary", fmt.Errorf("vertex %d: %w", i, err))
		}
		ring = append(ring, orb.Point{p[0], p[1]})
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}

	return Boundary{ring: ring}, nil
}

// ParseBoundary decodes the stored geometry text, a JSON array of [lat, lng] pairs.
func ParseBoundary(geometry string) (Boundary, error) {
	var pairs [][]float64
	if err := json.Unmarshal([]byte(geometry), &pairs); err != nil {
		return Boundary{}, errs.NewValueIsInvalidErrorWithCause("boundary", err)
	}
	return NewBoundary(pairs)
}

// Contains applies an even-odd point-in-polygon test. Points on an edge
// count as inside.
func (b Boundary) Contains(loc kernel.Location) bool {
	if len(b.ring) == 0 {
		return false
	}
	return planar.RingContains(b.ring, loc.Point())
}

// Pairs returns the vertices without the closing point.
func (b Boundary) Pairs() [][]float64 {
	if len(b.ring) == 0 {
		return nil
	}
	pts := b.ring[:len(b.ring)-1]
	pairs := make([][]float64, 0, len(pts))
	for _, p := range pts {
		pairs = append(pairs, []float64{p[0], p[1]})
	}
	return pairs
}

// Encode renders the boundary in the stored geometry format.
func (b Boundary) Encode() (string, error) {
	if len(b.ring) == 0 {
		return "", errors.New("boundary is empty")
	}
	raw, err := json.Marshal(b.Pairs())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (b Boundary) Bound() orb.Bound {
	return b.ring.Bound()
}
