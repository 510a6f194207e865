// Package vehiclerepo persists vehicles together with the load currently
// committed to them.
package vehiclerepo

import (
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is the row shape of the vehicles table.
type VehicleDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number    string     `gorm:"column:vehicle_number;type:varchar(64);uniqueIndex;not null"`
	Capacity  LoadDTO    `gorm:"embedded;embeddedPrefix:max_"`
	Committed LoadDTO    `gorm:"embedded;embeddedPrefix:committed_"`
	ZoneID    *uuid.UUID `gorm:"type:uuid;index"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

// LoadDTO is embedded twice: max_weight_kg/max_volume_m3 and
// committed_weight_kg/committed_volume_m3.
type LoadDTO struct {
	WeightKg float64 `gorm:"type:double precision;not null;default:0"`
	VolumeM3 float64 `gorm:"type:double precision;not null;default:0"`
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:     v.ID().Bytes(),
		Number: v.Number(),
		Capacity: LoadDTO{
			WeightKg: v.Capacity().WeightKg(),
			VolumeM3: v.Capacity().VolumeM3(),
		},
		Committed: LoadDTO{
			WeightKg: v.Committed().WeightKg(),
			VolumeM3: v.Committed().VolumeM3(),
		},
		ZoneID:    rawID(v.ZoneID()),
		DriverID:  rawID(v.DriverID()),
		CreatedAt: v.CreatedAt(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zoneID, err := domainID(dto.ZoneID)
	if err != nil {
		return nil, err
	}

	driverID, err := domainID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.NewLoad(dto.Capacity.WeightKg, dto.Capacity.VolumeM3)
	if err != nil {
		return nil, err
	}

	committed, err := kernel.NewLoad(dto.Committed.WeightKg, dto.Committed.VolumeM3)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Number, capacity, committed, zoneID, driverID, dto.CreatedAt)
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent reference
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
