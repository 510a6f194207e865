package kernel

import (
	"errors"
	"math"

	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

const cubicCentimetresPerCubicMetre = 1_000_000.0

var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions")

// Dimensions is the footprint of a parcel in centimetres.
// The volume is always derived, never supplied.
type Dimensions struct { //nolint:recvcheck //using for validation
	lengthCm float64
	widthCm  float64
	heightCm float64
	guard    guard.ConstructorGuard
}

func NewDimensions(lengthCm, widthCm, heightCm float64) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setSide("lengthCm", lengthCm, &d.lengthCm),
		d.setSide("widthCm", widthCm, &d.widthCm),
		d.setSide("heightCm", heightCm, &d.heightCm),
	); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) LengthCm() float64 { return d.lengthCm }
func (d Dimensions) WidthCm() float64  { return d.widthCm }
func (d Dimensions) HeightCm() float64 { return d.heightCm }

// VolumeM3 is l*w*h / 1e6; 100x50x20 cm gives 0.1 m3.
func (d Dimensions) VolumeM3() float64 {
	return d.lengthCm * d.widthCm * d.heightCm / cubicCentimetresPerCubicMetre
}

func (d *Dimensions) setSide(name string, v float64, dst *float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, errors.New("must be a positive finite number"))
	}
	*dst = v
	return nil
}
