package kernel

import (
	"errors"
	"fmt"
	"math"

	"fleetdispatch/internal/pkg/errs"
)

// Load is a weight and volume pair. It is used both as an order's demand and
// as a vehicle's capacity or committed load. The zero Load is valid and empty.
type Load struct {
	weightKg float64
	volumeM3 float64
}

// NewLoad rejects negative and non-finite components.
func NewLoad(weightKg, volumeM3 float64) (Load, error) {
	var errWeight, errVolume error
	if !isNonNegativeFinite(weightKg) {
		errWeight = errs.NewValueIsInvalidErrorWithCause("weightKg", errors.New("must be a non-negative finite number"))
	}
	if !isNonNegativeFinite(volumeM3) {
		errVolume = errs.NewValueIsInvalidErrorWithCause("volumeM3", errors.New("must be a non-negative finite number"))
	}
	if err := errors.Join(errWeight, errVolume); err != nil {
		return Load{}, err
	}
	return Load{weightKg: weightKg, volumeM3: volumeM3}, nil
}

// NewPositiveLoad is NewLoad with both components strictly greater than zero.
func NewPositiveLoad(weightKg, volumeM3 float64) (Load, error) {
	l, err := NewLoad(weightKg, volumeM3)
	if err != nil {
		return Load{}, err
	}
	var errWeight, errVolume error
	if weightKg == 0 {
		errWeight = errs.NewValueIsInvalidErrorWithCause("weightKg", errors.New("must be greater than zero"))
	}
	if volumeM3 == 0 {
		errVolume = errs.NewValueIsInvalidErrorWithCause("volumeM3", errors.New("must be greater than zero"))
	}
	if err = errors.Join(errWeight, errVolume); err != nil {
		return Load{}, err
	}
	return l, nil
}

func (l Load) WeightKg() float64 { return l.weightKg }
func (l Load) VolumeM3() float64 { return l.volumeM3 }

func (l Load) IsZero() bool {
	return l.weightKg == 0 && l.volumeM3 == 0
}

// Covers reports whether l is at least other on both axes, compared exactly.
func (l Load) Covers(other Load) bool {
	return l.weightKg >= other.weightKg && l.volumeM3 >= other.volumeM3
}

// CoversWithin is Covers with an absolute tolerance added to l.
func (l Load) CoversWithin(other Load, tolerance float64) bool {
	return other.weightKg <= l.weightKg+tolerance && other.volumeM3 <= l.volumeM3+tolerance
}

func (l Load) Add(other Load) Load {
	return Load{weightKg: l.weightKg + other.weightKg, volumeM3: l.volumeM3 + other.volumeM3}
}

// Sub subtracts other, clamping each axis at zero.
func (l Load) Sub(other Load) Load {
	return Load{
		weightKg: math.Max(0, l.weightKg-other.weightKg),
		volumeM3: math.Max(0, l.volumeM3-other.volumeM3),
	}
}

func (l Load) String() string {
	return fmt.Sprintf("Load(%gkg,%gm3)", l.weightKg, l.volumeM3)
}

func isNonNegativeFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
