package vehicle

import (
	"errors"
	"strings"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
)

// CapacityTolerance absorbs floating point drift when committed loads are summed.
const CapacityTolerance = 1e-9

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is a truck or van that serves at most one zone.
//
// Besides its static capacity a vehicle tracks the load committed to it by
// active orders. Committed load may exceed capacity only through a manual
// assignment, which skips capacity checks.
type Vehicle struct {
	id        kernel.UUID
	number    string
	capacity  kernel.Load
	committed kernel.Load
	zoneID    *kernel.UUID
	driverID  *kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewVehicle creates a vehicle with nothing committed. zoneID and driverID are optional.
func NewVehicle(
	id kernel.UUID,
	number string,
	capacity kernel.Load,
	zoneID, driverID *kernel.UUID,
	createdAt time.Time,
) (*Vehicle, error) {
	v := &Vehicle{isConstructed: true}

	if err := errors.Join(
		v.setID(id),
		v.setNumber(number),
		v.setCapacity(capacity),
		v.setZoneID(zoneID),
		v.setDriverID(driverID),
		v.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle rebuilds a vehicle from storage including its committed load.
func RestoreVehicle(
	id kernel.UUID,
	number string,
	capacity kernel.Load,
	committed kernel.Load,
	zoneID, driverID *kernel.UUID,
	createdAt time.Time,
) (*Vehicle, error) {
	v, err := NewVehicle(id, number, capacity, zoneID, driverID, createdAt)
	if err != nil {
		return nil, err
	}
	v.committed = committed
	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

func (v *Vehicle) Number() string {
	return v.number
}

func (v *Vehicle) Capacity() kernel.Load {
	return v.capacity
}

func (v *Vehicle) Committed() kernel.Load {
	return v.committed
}

func (v *Vehicle) ZoneID() *kernel.UUID {
	if v.zoneID == nil {
		return nil
	}
	return v.zoneID.Ptr()
}

func (v *Vehicle) DriverID() *kernel.UUID {
	if v.driverID == nil {
		return nil
	}
	return v.driverID.Ptr()
}

func (v *Vehicle) CreatedAt() time.Time {
	return v.createdAt
}

// IsDrivenBy reports whether userID is this vehicle's driver.
func (v *Vehicle) IsDrivenBy(userID kernel.UUID) bool {
	return v.driverID != nil && v.driverID.IsEqual(userID)
}

// Admits compares a single order's demand against maximum capacity, exactly.
func (v *Vehicle) Admits(demand kernel.Load) bool {
	return v.capacity.Covers(demand)
}

// HasRoomFor reports whether demand fits on top of the committed load.
func (v *Vehicle) HasRoomFor(demand kernel.Load) bool {
	return v.HasRoomReplacing(kernel.Load{}, demand)
}

// HasRoomReplacing is HasRoomFor with carried taken off the committed load
// first. carried is a load already booked on this vehicle.
func (v *Vehicle) HasRoomReplacing(carried, demand kernel.Load) bool {
	return v.capacity.CoversWithin(v.committed.Sub(carried).Add(demand), CapacityTolerance)
}

// Commit books demand against the vehicle without checking capacity.
func (v *Vehicle) Commit(demand kernel.Load) {
	v.committed = v.committed.Add(demand)
}

// Release frees demand previously committed. It never goes below zero.
func (v *Vehicle) Release(demand kernel.Load) {
	v.committed = v.committed.Sub(demand)
}

// Utilization is committed volume as a percentage of volume capacity.
func (v *Vehicle) Utilization() float64 {
	if v.capacity.VolumeM3() == 0 {
		return 0
	}
	return v.committed.VolumeM3() / v.capacity.VolumeM3() * 100
}

func (v *Vehicle) Renumber(number string) error {
	return v.setNumber(number)
}

func (v *Vehicle) Resize(capacity kernel.Load) error {
	return v.setCapacity(capacity)
}

// MoveToZone rebinds the vehicle; nil detaches it from any zone.
func (v *Vehicle) MoveToZone(zoneID *kernel.UUID) error {
	return v.setZoneID(zoneID)
}

// AssignDriver sets the driver; nil leaves the vehicle without one.
func (v *Vehicle) AssignDriver(driverID *kernel.UUID) error {
	return v.setDriverID(driverID)
}

// Before orders vehicles by creation time, then identifier.
func (v *Vehicle) Before(other *Vehicle) bool {
	if !v.createdAt.Equal(other.createdAt) {
		return v.createdAt.Before(other.createdAt)
	}
	return v.id.Less(other.id)
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("vehicleNumber")
	}
	v.number = number
	return nil
}

func (v *Vehicle) setCapacity(capacity kernel.Load) error {
	if capacity.WeightKg() <= 0 || capacity.VolumeM3() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", errors.New("weight and volume must be greater than zero"))
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setZoneID(zoneID *kernel.UUID) error {
	if zoneID == nil {
		v.zoneID = nil
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("zoneID", err)
	}
	v.zoneID = zoneID.Ptr()
	return nil
}

func (v *Vehicle) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		v.driverID = nil
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}
	v.driverID = driverID.Ptr()
	return nil
}

func (v *Vehicle) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	v.createdAt = createdAt
	return nil
}
