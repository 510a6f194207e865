// Package ports defines the persistence contracts of the dispatch domain.
package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/zone"
)

// ZoneRepository stores zones with their geometry text untouched.
type ZoneRepository interface {
	// Add fails with *errs.AlreadyExistsError when the name is taken.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Get returns *errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetForShare is Get with the row share-locked, so the zone cannot be
	// deleted before the caller's transaction ends.
	GetForShare(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// ListAll returns every zone ordered by creation time, then id.
	ListAll(ctx context.Context) ([]*zone.Zone, error)

	// Delete fails with *errs.DependentsExistError while any vehicle
	// references the zone.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountVehicles returns the number of vehicles bound to the zone.
	CountVehicles(ctx context.Context, id kernel.UUID) (int64, error)
}
