// Package commands holds the write side: every state change of orders, zones
// and vehicles is one command plus one handler. A handler checks the acting
// principal, opens a unit of work, applies the domain operation and commits.
package commands

import (
	"context"

	"fleetdispatch/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// FleetUoW covers zone and vehicle administration.
	FleetUoW interface {
		TxManager
		ZoneRepoFactory
		VehicleRepoFactory
	}

	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// UoW spans all three aggregates; order commands need it because an
	// assignment touches the order, its vehicles and the zone list.
	//
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//   ...
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ZoneRepoFactory
		VehicleRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
