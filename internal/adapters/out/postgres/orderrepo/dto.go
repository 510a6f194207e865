// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row shape of the orders table. Volume is stored for
// reporting but always recomputed from the dimensions on load.
type OrderDTO struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey"`
	RequesterID        uuid.UUID     `gorm:"type:uuid;not null;index"`
	ItemName           string        `gorm:"type:varchar(255)"`
	Dimensions         DimensionsDTO `gorm:"embedded"`
	WeightKg           float64       `gorm:"type:double precision;not null"`
	VolumeM3           float64       `gorm:"type:double precision;not null"`
	Pickup             LocationDTO   `gorm:"embedded;embeddedPrefix:pickup_"`
	PickupAddress      string        `gorm:"type:text"`
	DropLat            *float64      `gorm:"type:double precision"`
	DropLng            *float64      `gorm:"type:double precision"`
	DropAddress        string        `gorm:"type:text"`
	Status             string        `gorm:"type:varchar(16);not null;index"`
	VehicleID          *uuid.UUID    `gorm:"type:uuid;index"`
	DriverConfirmed    bool          `gorm:"not null;default:false"`
	RequesterConfirmed bool          `gorm:"not null;default:false"`
	CreatedAt          time.Time     `gorm:"not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type DimensionsDTO struct {
	LengthCm float64 `gorm:"type:double precision;not null"`
	WidthCm  float64 `gorm:"type:double precision;not null"`
	HeightCm float64 `gorm:"type:double precision;not null"`
}

type LocationDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          o.ID().Bytes(),
		RequesterID: o.RequesterID().Bytes(),
		ItemName:    o.ItemName(),
		Dimensions: DimensionsDTO{
			LengthCm: o.Dimensions().LengthCm(),
			WidthCm:  o.Dimensions().WidthCm(),
			HeightCm: o.Dimensions().HeightCm(),
		},
		WeightKg: o.WeightKg(),
		VolumeM3: o.VolumeM3(),
		Pickup: LocationDTO{
			Lat: o.Pickup().Lat(),
			Lng: o.Pickup().Lng(),
		},
		PickupAddress:      o.PickupAddress(),
		DropAddress:        o.DropAddress(),
		Status:             o.Status().String(),
		DriverConfirmed:    o.DriverConfirmed(),
		RequesterConfirmed: o.RequesterConfirmed(),
		CreatedAt:          o.CreatedAt(),
	}

	if drop := o.Drop(); drop != nil {
		lat, lng := drop.Lat(), drop.Lng()
		dto.DropLat = &lat
		dto.DropLng = &lng
	}

	if id := o.VehicleID(); id != nil {
		raw := id.Bytes()
		dto.VehicleID = &raw
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	dimensions, err := kernel.NewDimensions(dto.Dimensions.LengthCm, dto.Dimensions.WidthCm, dto.Dimensions.HeightCm)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewLocation(dto.Pickup.Lat, dto.Pickup.Lng)
	if err != nil {
		return nil, err
	}

	var drop *kernel.Location
	if dto.DropLat != nil && dto.DropLng != nil {
		loc, dropErr := kernel.NewLocation(*dto.DropLat, *dto.DropLng)
		if dropErr != nil {
			return nil, dropErr
		}
		drop = &loc
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		vehicleID = &vID
	}

	return order.RestoreOrder(
		id,
		requesterID,
		order.Parcel{ItemName: dto.ItemName, Dimensions: dimensions, WeightKg: dto.WeightKg},
		order.Route{
			Pickup:        pickup,
			PickupAddress: dto.PickupAddress,
			Drop:          drop,
			DropAddress:   dto.DropAddress,
		},
		order.State{
			Status:             status,
			VehicleID:          vehicleID,
			DriverConfirmed:    dto.DriverConfirmed,
			RequesterConfirmed: dto.RequesterConfirmed,
		},
		dto.CreatedAt,
	)
}
