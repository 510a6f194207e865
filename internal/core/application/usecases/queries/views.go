package queries

import (
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/model/zone"
)

// OrderView is an order as listed to requesters, drivers and admins.
// VehicleNumber is empty when no vehicle is assigned.
type OrderView struct {
	ID                 kernel.UUID
	RequesterID        kernel.UUID
	ItemName           string
	LengthCm           float64
	WidthCm            float64
	HeightCm           float64
	WeightKg           float64
	VolumeM3           float64
	Pickup             kernel.Location
	PickupAddress      string
	Drop               *kernel.Location
	DropAddress        string
	Status             order.Status
	VehicleID          *kernel.UUID
	VehicleNumber      string
	DriverConfirmed    bool
	RequesterConfirmed bool
	CreatedAt          time.Time
}

// NewOrderView reads the view off a loaded order. VehicleNumber stays empty.
func NewOrderView(o *order.Order) OrderView {
	dims := o.Dimensions()
	return OrderView{
		ID:                 o.ID(),
		RequesterID:        o.RequesterID(),
		ItemName:           o.ItemName(),
		LengthCm:           dims.LengthCm(),
		WidthCm:            dims.WidthCm(),
		HeightCm:           dims.HeightCm(),
		WeightKg:           o.WeightKg(),
		VolumeM3:           o.VolumeM3(),
		Pickup:             o.Pickup(),
		PickupAddress:      o.PickupAddress(),
		Drop:               o.Drop(),
		DropAddress:        o.DropAddress(),
		Status:             o.Status(),
		VehicleID:          o.VehicleID(),
		DriverConfirmed:    o.DriverConfirmed(),
		RequesterConfirmed: o.RequesterConfirmed(),
		CreatedAt:          o.CreatedAt(),
	}
}

// VehicleView carries the committed load next to the capacity.
// Utilization is committed volume as a percentage of volume capacity.
type VehicleView struct {
	ID          kernel.UUID
	Number      string
	Capacity    kernel.Load
	Committed   kernel.Load
	Utilization float64
	ZoneID      *kernel.UUID
	DriverID    *kernel.UUID
	CreatedAt   time.Time
}

// NewVehicleView reads the view off a loaded vehicle.
func NewVehicleView(v *vehicle.Vehicle) VehicleView {
	return VehicleView{
		ID:          v.ID(),
		Number:      v.Number(),
		Capacity:    v.Capacity(),
		Committed:   v.Committed(),
		Utilization: v.Utilization(),
		ZoneID:      v.ZoneID(),
		DriverID:    v.DriverID(),
		CreatedAt:   v.CreatedAt(),
	}
}

// ZoneView lists a zone with its vertices as [lat, lng] pairs. Boundary is
// nil when the stored geometry cannot be parsed; Geometry keeps the raw text.
type ZoneView struct {
	ID        kernel.UUID
	Name      string
	Boundary  [][]float64
	Geometry  string
	CreatedAt time.Time
}

func NewZoneView(z *zone.Zone) ZoneView {
	view := ZoneView{
		ID:        z.ID(),
		Name:      z.Name(),
		Geometry:  z.Geometry(),
		CreatedAt: z.CreatedAt(),
	}
	if boundary, err := z.Boundary(); err == nil {
		view.Boundary = boundary.Pairs()
	}
	return view
}
