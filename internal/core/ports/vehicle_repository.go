package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/vehicle"
)

// VehicleRepository persists vehicles together with their committed load.
type VehicleRepository interface {
	// Add fails with *errs.AlreadyExistsError when the vehicle number is taken.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// ListAll returns every vehicle in creation order.
	ListAll(ctx context.Context) ([]*vehicle.Vehicle, error)

	// ListByZone returns the vehicles bound to a zone in creation order.
	ListByZone(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error)

	// ListByZoneForUpdate is ListByZone with the rows locked. Concurrent
	// order creations in one zone serialize on these locks.
	ListByZoneForUpdate(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error)

	// Delete fails with *errs.DependentsExistError while any order other than
	// a CANCELLED one references the vehicle. It locks the vehicle row first.
	Delete(ctx context.Context, id kernel.UUID) error
}
