// Package zonerepo persists zones. The boundary is stored as the JSON text it
// was written with and only parsed when a zone is used for resolution.
package zonerepo

import (
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO is the row shape of the zones table.
type ZoneDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Geometry  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (ZoneDTO) TableName() string {
	return "zones"
}

func fromDomain(z *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:        z.ID().Bytes(),
		Name:      z.Name(),
		Geometry:  z.Geometry(),
		CreatedAt: z.CreatedAt(),
	}
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, dto.Name, dto.Geometry, dto.CreatedAt)
}
