package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Party is the side of the delivery that confirms the handover.
type Party int

const (
	PartyDriver Party = iota + 1
	PartyRequester
)

func (p Party) String() string {
	switch p {
	case PartyDriver:
		return "driver"
	case PartyRequester:
		return "requester"
	default:
		return fmt.Sprintf("party(%d)", int(p))
	}
}

// Parcel is what is being carried.
type Parcel struct {
	ItemName   string
	Dimensions kernel.Dimensions
	WeightKg   float64
}

// Route is where the parcel is collected and, optionally, where it goes.
type Route struct {
	Pickup        kernel.Location
	PickupAddress string
	Drop          *kernel.Location
	DropAddress   string
}

// State is the mutable part of an order, used when restoring from storage.
type State struct {
	Status             Status
	VehicleID          *kernel.UUID
	DriverConfirmed    bool
	RequesterConfirmed bool
}

// Order is the aggregate root of a delivery request.
//
// Invariants:
//   - volume is derived from the parcel dimensions, never supplied
//   - a vehicle is referenced exactly when the status is ASSIGNED, SHIPPED or DELIVERED
//   - status only changes through Transition
type Order struct {
	id          kernel.UUID
	requesterID kernel.UUID
	parcel      Parcel
	demand      kernel.Load
	route       Route
	createdAt   time.Time

	status             Status
	vehicleID          *kernel.UUID
	driverConfirmed    bool
	requesterConfirmed bool

	isConstructed bool
}

// NewOrder creates a PENDING order with no vehicle and no confirmations.
func NewOrder(id, requesterID kernel.UUID, parcel Parcel, route Route, createdAt time.Time) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRequesterID(requesterID),
		order.setParcel(parcel),
		order.setRoute(route),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from storage. The state must be consistent:
// the vehicle reference has to agree with the status.
func RestoreOrder(
	id, requesterID kernel.UUID,
	parcel Parcel,
	route Route,
	state State,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, requesterID, parcel, route, createdAt)
	if err != nil {
		return nil, err
	}

	if err = state.Status.Validate(); err != nil {
		return nil, err
	}
	if state.VehicleID != nil {
		if err = state.VehicleID.Validate(); err != nil {
			return nil, err
		}
	}
	if err = state.Status.validateCanHaveVehicle(state.VehicleID != nil); err != nil {
		return nil, err
	}

	order.status = state.Status
	order.vehicleID = state.VehicleID
	order.driverConfirmed = state.DriverConfirmed
	order.requesterConfirmed = state.RequesterConfirmed
	return order, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) RequesterID() kernel.UUID {
	return o.requesterID
}

func (o *Order) ItemName() string {
	return o.parcel.ItemName
}

func (o *Order) Dimensions() kernel.Dimensions {
	return o.parcel.Dimensions
}

func (o *Order) WeightKg() float64 {
	return o.parcel.WeightKg
}

func (o *Order) VolumeM3() float64 {
	return o.demand.VolumeM3()
}

// Demand is the load the order places on a vehicle.
func (o *Order) Demand() kernel.Load {
	return o.demand
}

func (o *Order) Pickup() kernel.Location {
	return o.route.Pickup
}

func (o *Order) PickupAddress() string {
	return o.route.PickupAddress
}

// Drop returns nil when the requester gave no destination.
func (o *Order) Drop() *kernel.Location {
	if o.route.Drop == nil {
		return nil
	}
	drop := *o.route.Drop
	return &drop
}

func (o *Order) DropAddress() string {
	return o.route.DropAddress
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

// VehicleID returns nil if no vehicle is assigned.
func (o *Order) VehicleID() *kernel.UUID {
	if o.vehicleID == nil {
		return nil
	}
	return o.vehicleID.Ptr()
}

func (o *Order) DriverConfirmed() bool {
	return o.driverConfirmed
}

func (o *Order) RequesterConfirmed() bool {
	return o.requesterConfirmed
}

// Assign binds the order to a vehicle. Reassigning an ASSIGNED order is allowed.
func (o *Order) Assign(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	newStatus, err := Transition(o.status, EventAssign)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = vehicleID.Ptr()
	return nil
}

// Unassign returns an ASSIGNED order to PENDING and drops its vehicle.
func (o *Order) Unassign() error {
	newStatus, err := Transition(o.status, EventUnassign)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = nil
	return nil
}

func (o *Order) Ship() error {
	newStatus, err := Transition(o.status, EventShip)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmDelivery records the handover for one party. Confirming twice is a
// no-op. Setting a new confirmation requires SHIPPED. Once both parties have
// confirmed the order becomes DELIVERED and delivered is true for that call only.
func (o *Order) ConfirmDelivery(party Party) (delivered bool, err error) {
	var flag *bool
	switch party {
	case PartyDriver:
		flag = &o.driverConfirmed
	case PartyRequester:
		flag = &o.requesterConfirmed
	default:
		return false, errs.NewValueIsInvalidErrorWithCause("party", fmt.Errorf("%s is not a valid party", party))
	}

	if *flag {
		return false, nil
	}
	if o.status != Shipped {
		return false, errs.NewPreconditionFailedError(
			fmt.Sprintf("cannot confirm delivery of an order in status %s", o.status))
	}

	*flag = true
	if !o.driverConfirmed || !o.requesterConfirmed {
		return false, nil
	}

	newStatus, err := Transition(o.status, EventDeliver)
	if err != nil {
		return false, err
	}
	o.status = newStatus
	return true, nil
}

// Cancel is the requester's cancellation; only PENDING orders qualify.
func (o *Order) Cancel() error {
	newStatus, err := Transition(o.status, EventCancel)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AdminCancel cancels a PENDING or ASSIGNED order and drops its vehicle.
func (o *Order) AdminCancel() error {
	newStatus, err := Transition(o.status, EventAdminCancel)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requesterID", err)
	}
	o.requesterID = id
	return nil
}

func (o *Order) setParcel(parcel Parcel) error {
	if err := parcel.Dimensions.Validate(); err != nil {
		return err
	}
	w := parcel.WeightKg
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%g is not greater than 0", w))
	}
	demand, err := kernel.NewLoad(w, parcel.Dimensions.VolumeM3())
	if err != nil {
		return err
	}

	parcel.ItemName = strings.TrimSpace(parcel.ItemName)
	o.parcel = parcel
	o.demand = demand
	return nil
}

func (o *Order) setRoute(route Route) error {
	if err := route.Pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}
	if route.Drop != nil {
		if err := route.Drop.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("drop", err)
		}
		drop := *route.Drop
		route.Drop = &drop
	}
	o.route = route
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
