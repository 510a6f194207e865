package queries

import (
	"context"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/zone"
	"fleetdispatch/internal/core/domain/policy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListZonesQueryHandler lists zones in creation order, the same order the
// geofence walks them in.
type ListZonesQueryHandler struct {
	db     *gorm.DB
	policy policy.Policy
}

func NewListZonesQueryHandler(db *gorm.DB) ListZonesQueryHandler {
	return ListZonesQueryHandler{db: db, policy: policy.New()}
}

func (h ListZonesQueryHandler) Handle(ctx context.Context, query ListZonesQuery) ([]ZoneView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanManageFleet(query.Principal()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			geometry,
			created_at
		FROM zones
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]ZoneView, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			geometry  string
			createdAt time.Time
		)

		if err = rows.Scan(&id, &name, &geometry, &createdAt); err != nil {
			return nil, err
		}

		zoneID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		z, restoreErr := zone.RestoreZone(zoneID, name, geometry, createdAt)
		if restoreErr != nil {
			return nil, restoreErr
		}
		zones = append(zones, NewZoneView(z))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
