package queries

import (
	"database/sql"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

const selectOrders = `
	SELECT
		o.id,
		o.requester_id,
		o.item_name,
		o.length_cm,
		o.width_cm,
		o.height_cm,
		o.weight_kg,
		o.volume_m3,
		o.pickup_lat,
		o.pickup_lng,
		o.pickup_address,
		o.drop_lat,
		o.drop_lng,
		o.drop_address,
		o.status,
		o.vehicle_id,
		v.vehicle_number,
		o.driver_confirmed,
		o.requester_confirmed,
		o.created_at
	FROM orders o
	LEFT JOIN vehicles v ON v.id = o.vehicle_id
`

const newestFirst = ` ORDER BY o.created_at DESC, o.id`

func scanOrders(rows *sql.Rows) ([]OrderView, error) {
	orders := make([]OrderView, 0)

	for rows.Next() {
		var (
			view                 OrderView
			id, requesterID      uuid.UUID
			pickupLat, pickupLng float64
			dropLat, dropLng     sql.NullFloat64
			status               string
			vehicleID            uuid.NullUUID
			vehicleNumber        sql.NullString
		)

		err := rows.Scan(
			&id,
			&requesterID,
			&view.ItemName,
			&view.LengthCm,
			&view.WidthCm,
			&view.HeightCm,
			&view.WeightKg,
			&view.VolumeM3,
			&pickupLat,
			&pickupLng,
			&view.PickupAddress,
			&dropLat,
			&dropLng,
			&view.DropAddress,
			&status,
			&vehicleID,
			&vehicleNumber,
			&view.DriverConfirmed,
			&view.RequesterConfirmed,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.RequesterID, err = kernel.UUIDFromBytes(requesterID[:]); err != nil {
			return nil, err
		}
		if view.Pickup, err = kernel.NewLocation(pickupLat, pickupLng); err != nil {
			return nil, err
		}
		if dropLat.Valid && dropLng.Valid {
			drop, dropErr := kernel.NewLocation(dropLat.Float64, dropLng.Float64)
			if dropErr != nil {
				return nil, dropErr
			}
			view.Drop = &drop
		}
		if view.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if vehicleID.Valid {
			vID, vehicleErr := kernel.UUIDFromBytes(vehicleID.UUID[:])
			if vehicleErr != nil {
				return nil, vehicleErr
			}
			view.VehicleID = &vID
			view.VehicleNumber = vehicleNumber.String
		}

		orders = append(orders, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
