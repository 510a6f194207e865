package queries

import (
	"context"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListVehiclesQueryHandler struct {
	db     *gorm.DB
	policy policy.Policy
}

func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db, policy: policy.New()}
}

// Handle lists the fleet in creation order. Rows are restored into vehicles
// so utilization is computed the same way as everywhere else.
func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanManageFleet(query.Principal()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_number,
			max_weight_kg,
			max_volume_m3,
			committed_weight_kg,
			committed_volume_m3,
			zone_id,
			driver_id,
			created_at
		FROM vehicles
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]VehicleView, 0)
	for rows.Next() {
		var (
			id                     uuid.UUID
			number                 string
			maxWeight, maxVolume   float64
			usedWeight, usedVolume float64
			zoneID, driverID       uuid.NullUUID
			createdAt              time.Time
		)

		err = rows.Scan(
			&id,
			&number,
			&maxWeight,
			&maxVolume,
			&usedWeight,
			&usedVolume,
			&zoneID,
			&driverID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		v, restoreErr := restoreVehicle(
			id, number, maxWeight, maxVolume, usedWeight, usedVolume, zoneID, driverID, createdAt,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		vehicles = append(vehicles, NewVehicleView(v))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

func restoreVehicle(
	id uuid.UUID,
	number string,
	maxWeight, maxVolume, usedWeight, usedVolume float64,
	zoneID, driverID uuid.NullUUID,
	createdAt time.Time,
) (*vehicle.Vehicle, error) {
	vehicleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.NewLoad(maxWeight, maxVolume)
	if err != nil {
		return nil, err
	}

	committed, err := kernel.NewLoad(usedWeight, usedVolume)
	if err != nil {
		return nil, err
	}

	zone, err := nullableID(zoneID)
	if err != nil {
		return nil, err
	}

	driver, err := nullableID(driverID)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(vehicleID, number, capacity, committed, zone, driver, createdAt)
}

func nullableID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
