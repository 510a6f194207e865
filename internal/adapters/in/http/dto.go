package http

import (
	"encoding/json"
	"errors"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/pkg/errs"
)

// Coordinates are latitude first throughout the API.
type CoordinateRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

func (r CoordinateRequest) toLocation() (kernel.Location, error) {
	return kernel.NewLocation(*r.Lat, *r.Lng)
}

type CreateOrderRequest struct {
	ItemName      string             `json:"item_name" validate:"max=255"`
	LengthCm      float64            `json:"length_cm" validate:"gt=0"`
	WidthCm       float64            `json:"width_cm" validate:"gt=0"`
	HeightCm      float64            `json:"height_cm" validate:"gt=0"`
	WeightKg      float64            `json:"weight_kg" validate:"gte=0"`
	Pickup        CoordinateRequest  `json:"pickup"`
	PickupAddress string             `json:"pickup_address" validate:"max=1024"`
	Drop          *CoordinateRequest `json:"drop" validate:"omitempty"`
	DropAddress   string             `json:"drop_address" validate:"max=1024"`
}

func (r CreateOrderRequest) toDomain() (order.Parcel, order.Route, error) {
	dims, dimsErr := kernel.NewDimensions(r.LengthCm, r.WidthCm, r.HeightCm)
	pickup, pickupErr := r.Pickup.toLocation()

	var (
		drop    *kernel.Location
		dropErr error
	)
	if r.Drop != nil {
		loc, err := r.Drop.toLocation()
		drop, dropErr = &loc, err
	}

	if err := errors.Join(dimsErr, pickupErr, dropErr); err != nil {
		return order.Parcel{}, order.Route{}, err
	}

	parcel := order.Parcel{ItemName: r.ItemName, Dimensions: dims, WeightKg: r.WeightKg}
	route := order.Route{
		Pickup:        pickup,
		PickupAddress: r.PickupAddress,
		Drop:          drop,
		DropAddress:   r.DropAddress,
	}
	return parcel, route, nil
}

type AssignOrderRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required,uuid"`
}

type CreateZoneRequest struct {
	Name     string      `json:"name" validate:"required,max=255"`
	Boundary [][]float64 `json:"boundary" validate:"required,min=3,dive,len=2"`
}

type CreateVehicleRequest struct {
	VehicleNumber string  `json:"vehicle_number" validate:"required,max=64"`
	MaxWeightKg   float64 `json:"max_weight_kg" validate:"gt=0"`
	MaxVolumeM3   float64 `json:"max_volume_m3" validate:"gt=0"`
	ZoneID        *string `json:"zone_id" validate:"omitempty,uuid"`
	DriverID      *string `json:"driver_id" validate:"omitempty,uuid"`
}

// UpdateVehicleRequest is a partial update. Capacity is replaced as a whole,
// so both limits must be sent together; zone_id and driver_id accept null to
// clear the reference.
type UpdateVehicleRequest struct {
	VehicleNumber *string    `json:"vehicle_number" validate:"omitempty,min=1,max=64"`
	MaxWeightKg   *float64   `json:"max_weight_kg" validate:"omitempty,gt=0"`
	MaxVolumeM3   *float64   `json:"max_volume_m3" validate:"omitempty,gt=0"`
	ZoneID        OptionalID `json:"zone_id"`
	DriverID      OptionalID `json:"driver_id"`
}

func (r UpdateVehicleRequest) toChanges() (commands.VehicleChanges, error) {
	changes := commands.VehicleChanges{Number: r.VehicleNumber}

	var capacityErr error
	switch {
	case r.MaxWeightKg != nil && r.MaxVolumeM3 != nil:
		capacity, err := kernel.NewPositiveLoad(*r.MaxWeightKg, *r.MaxVolumeM3)
		if err == nil {
			changes.Capacity = &capacity
		}
		capacityErr = err
	case r.MaxWeightKg != nil || r.MaxVolumeM3 != nil:
		capacityErr = errs.NewValueIsRequiredError("max_weight_kg and max_volume_m3")
	}

	zoneChange, zoneErr := r.ZoneID.toRefChange("zone_id")
	driverChange, driverErr := r.DriverID.toRefChange("driver_id")
	changes.Zone, changes.Driver = zoneChange, driverChange

	if err := errors.Join(capacityErr, zoneErr, driverErr); err != nil {
		return commands.VehicleChanges{}, err
	}
	return changes, nil
}

// OptionalID tells an absent field apart from an explicit null.
type OptionalID struct {
	Set   bool
	Value *string
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalID) toRefChange(field string) (commands.RefChange, error) {
	if !o.Set {
		return commands.RefChange{}, nil
	}
	if o.Value == nil {
		return commands.RefChange{Set: true}, nil
	}
	id, err := parseID(field, *o.Value)
	if err != nil {
		return commands.RefChange{}, err
	}
	return commands.RefChange{Set: true, ID: &id}, nil
}

func parseID(field, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}

func parseOptionalID(field string, raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := parseID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OrderResponse struct {
	ID                    string      `json:"id"`
	RequesterID           string      `json:"requester_id"`
	ItemName              string      `json:"item_name"`
	LengthCm              float64     `json:"length_cm"`
	WidthCm               float64     `json:"width_cm"`
	HeightCm              float64     `json:"height_cm"`
	WeightKg              float64     `json:"weight_kg"`
	VolumeM3              float64     `json:"volume_m3"`
	Pickup                Coordinate  `json:"pickup"`
	PickupAddress         string      `json:"pickup_address,omitempty"`
	Drop                  *Coordinate `json:"drop,omitempty"`
	DropAddress           string      `json:"drop_address,omitempty"`
	Status                string      `json:"status"`
	AssignedVehicleID     *string     `json:"assigned_vehicle_id"`
	AssignedVehicleNumber string      `json:"assigned_vehicle_number,omitempty"`
	DriverConfirmed       bool        `json:"driver_confirmed"`
	RequesterConfirmed    bool        `json:"requester_confirmed"`
	CreatedAt             time.Time   `json:"created_at"`
}

func newOrderResponse(v queries.OrderView) OrderResponse {
	resp := OrderResponse{
		ID:                    v.ID.String(),
		RequesterID:           v.RequesterID.String(),
		ItemName:              v.ItemName,
		LengthCm:              v.LengthCm,
		WidthCm:               v.WidthCm,
		HeightCm:              v.HeightCm,
		WeightKg:              v.WeightKg,
		VolumeM3:              v.VolumeM3,
		Pickup:                Coordinate{Lat: v.Pickup.Lat(), Lng: v.Pickup.Lng()},
		PickupAddress:         v.PickupAddress,
		DropAddress:           v.DropAddress,
		Status:                v.Status.String(),
		AssignedVehicleID:     idString(v.VehicleID),
		AssignedVehicleNumber: v.VehicleNumber,
		DriverConfirmed:       v.DriverConfirmed,
		RequesterConfirmed:    v.RequesterConfirmed,
		CreatedAt:             v.CreatedAt,
	}
	if v.Drop != nil {
		resp.Drop = &Coordinate{Lat: v.Drop.Lat(), Lng: v.Drop.Lng()}
	}
	return resp
}

func newOrderResponses(views []queries.OrderView) []OrderResponse {
	resp := make([]OrderResponse, len(views))
	for i, v := range views {
		resp[i] = newOrderResponse(v)
	}
	return resp
}

type VehicleResponse struct {
	ID                string    `json:"id"`
	VehicleNumber     string    `json:"vehicle_number"`
	MaxWeightKg       float64   `json:"max_weight_kg"`
	MaxVolumeM3       float64   `json:"max_volume_m3"`
	CommittedWeightKg float64   `json:"committed_weight_kg"`
	CommittedVolumeM3 float64   `json:"committed_volume_m3"`
	UtilizationPct    float64   `json:"utilization_pct"`
	ZoneID            *string   `json:"zone_id"`
	DriverID          *string   `json:"driver_id"`
	CreatedAt         time.Time `json:"created_at"`
}

func newVehicleResponse(v queries.VehicleView) VehicleResponse {
	return VehicleResponse{
		ID:                v.ID.String(),
		VehicleNumber:     v.Number,
		MaxWeightKg:       v.Capacity.WeightKg(),
		MaxVolumeM3:       v.Capacity.VolumeM3(),
		CommittedWeightKg: v.Committed.WeightKg(),
		CommittedVolumeM3: v.Committed.VolumeM3(),
		UtilizationPct:    v.Utilization,
		ZoneID:            idString(v.ZoneID),
		DriverID:          idString(v.DriverID),
		CreatedAt:         v.CreatedAt,
	}
}

func newVehicleResponses(views []queries.VehicleView) []VehicleResponse {
	resp := make([]VehicleResponse, len(views))
	for i, v := range views {
		resp[i] = newVehicleResponse(v)
	}
	return resp
}

// ZoneResponse.Boundary is null when the stored geometry is malformed.
type ZoneResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Boundary  [][]float64 `json:"boundary"`
	CreatedAt time.Time   `json:"created_at"`
}

func newZoneResponse(v queries.ZoneView) ZoneResponse {
	return ZoneResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Boundary:  v.Boundary,
		CreatedAt: v.CreatedAt,
	}
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
