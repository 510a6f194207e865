package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update fails with *errs.ObjectNotFoundError when the order is gone.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByRequester returns a requester's orders, newest first.
	ListByRequester(ctx context.Context, requesterID kernel.UUID) ([]*order.Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// ListByDriver returns the orders assigned to vehicles driven by driverID, newest first.
	ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// CountActiveByVehicle counts non-terminal orders referencing the vehicle.
	CountActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (int64, error)
}
