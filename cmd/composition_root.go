package cmd

import (
	"fmt"
	"net/http"
	"time"

	httpin "fleetdispatch/internal/adapters/in/http"
	"fleetdispatch/internal/adapters/out/metrics"
	"fleetdispatch/internal/adapters/out/postgres"
	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
	registry   *prometheus.Registry
	recorder   *metrics.Recorder
	geofence   *services.GeofenceIndex
	matcher    services.CapacityMatcher
	dispatcher services.OrderDispatcher
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log *zap.Logger) (*CompositionRoot, error) {
	policy, err := services.ParseCapacityPolicy(cfg.CapacityPolicy)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	matcher := services.NewCapacityMatcher(policy)
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     log,
		registry:   registry,
		recorder:   recorder,
		geofence:   services.NewGeofenceIndex(logger.Component(log, "geofence"), recorder),
		matcher:    matcher,
		dispatcher: services.NewOrderDispatcher(matcher),
	}, nil
}

func (c *CompositionRoot) uows() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWs() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.uows(), c.geofence, c.dispatcher, c.recorder, logger.Component(c.logger, "create_order"), time.Now,
	)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.uows(), c.dispatcher, c.recorder)
}

func (c *CompositionRoot) CreateUnassignOrderCommandHandler() commands.UnassignOrderCommandHandler {
	return commands.NewUnassignOrderCommandHandler(c.uows(), c.dispatcher, c.recorder)
}

func (c *CompositionRoot) CreateStartShipmentCommandHandler() commands.StartShipmentCommandHandler {
	return commands.NewStartShipmentCommandHandler(c.uows(), c.recorder)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.uows(), c.dispatcher, c.recorder)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uows(), c.recorder)
}

func (c *CompositionRoot) CreateAdminCancelOrderCommandHandler() commands.AdminCancelOrderCommandHandler {
	return commands.NewAdminCancelOrderCommandHandler(c.uows(), c.dispatcher, c.recorder)
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	return commands.NewCreateZoneCommandHandler(c.fleetUoWs(), time.Now)
}

func (c *CompositionRoot) CreateDeleteZoneCommandHandler() commands.DeleteZoneCommandHandler {
	return commands.NewDeleteZoneCommandHandler(c.fleetUoWs())
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	return commands.NewCreateVehicleCommandHandler(c.fleetUoWs(), time.Now)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	return commands.NewUpdateVehicleCommandHandler(c.fleetUoWs())
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	return commands.NewDeleteVehicleCommandHandler(c.fleetUoWs())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriverOrdersQueryHandler() queries.ListDriverOrdersQueryHandler {
	return queries.NewListDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListZonesQueryHandler() queries.ListZonesQueryHandler {
	return queries.NewListZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompatibleVehiclesQueryHandler() queries.GetCompatibleVehiclesQueryHandler {
	repos := FuncRepositoriesFactory(func() queries.Repositories {
		return c.uowFactory.Create()
	})
	return queries.NewGetCompatibleVehiclesQueryHandler(repos, c.geofence, c.matcher)
}

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		AssignOrder:     c.CreateAssignOrderCommandHandler(),
		UnassignOrder:   c.CreateUnassignOrderCommandHandler(),
		StartShipment:   c.CreateStartShipmentCommandHandler(),
		ConfirmDelivery: c.CreateConfirmDeliveryCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		AdminCancel:     c.CreateAdminCancelOrderCommandHandler(),
		CreateZone:      c.CreateCreateZoneCommandHandler(),
		DeleteZone:      c.CreateDeleteZoneCommandHandler(),
		CreateVehicle:   c.CreateCreateVehicleCommandHandler(),
		UpdateVehicle:   c.CreateUpdateVehicleCommandHandler(),
		DeleteVehicle:   c.CreateDeleteVehicleCommandHandler(),

		ListOrders:         c.CreateListOrdersQueryHandler(),
		ListDriverOrders:   c.CreateListDriverOrdersQueryHandler(),
		CompatibleVehicles: c.CreateGetCompatibleVehiclesQueryHandler(),
		ListZones:          c.CreateListZonesQueryHandler(),
		ListVehicles:       c.CreateListVehiclesQueryHandler(),
	}
}

// MetricsHandler serves the registry owned by this root.
func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncRepositoriesFactory func() queries.Repositories

func (f FuncRepositoriesFactory) Create() queries.Repositories {
	return f()
}
