package commands

import (
	"context"
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/core/domain/services"

	"go.uber.org/zap"
)

// CreateOrderCommandHandler creates an order and tries to assign it at once:
// the pickup point is resolved to a zone, then the first vehicle of that zone
// with room for the parcel takes it. Neither a missing zone nor a missing
// vehicle is an error; the order then stays PENDING.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	geofence   *services.GeofenceIndex
	dispatcher services.OrderDispatcher
	policy     policy.Policy
	recorder   MetricsRecorder
	logger     *zap.Logger
	now        func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	geofence *services.GeofenceIndex,
	dispatcher services.OrderDispatcher,
	recorder MetricsRecorder,
	logger *zap.Logger,
	now func() time.Time,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geofence:   geofence,
		dispatcher: dispatcher,
		policy:     policy.New(),
		recorder:   recorderOrNop(recorder),
		logger:     logger,
		now:        now,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanCreateOrder(cmd.Principal()); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(kernel.NewUUID(), cmd.Principal().UserID, cmd.Parcel(), cmd.Route(), h.now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zones, err := uow.ZoneRepository().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	outcome := OutcomeNoZone
	var chosen *vehicle.Vehicle
	if z := h.geofence.Resolve(created.Pickup(), zones); z != nil {
		candidates, listErr := uow.VehicleRepository().ListByZoneForUpdate(ctx, z.ID())
		if listErr != nil {
			return nil, listErr
		}

		chosen, err = h.dispatcher.Dispatch(created, candidates)
		switch {
		case errors.Is(err, services.ErrVehicleNotFound):
			outcome = OutcomeNoVehicle
		case err != nil:
			return nil, err
		default:
			outcome = OutcomeAssigned
		}
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if chosen != nil {
		if err = uow.VehicleRepository().Update(ctx, chosen); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.AssignmentOutcome(outcome)
	if chosen != nil {
		h.recorder.OrderTransition(order.EventAssign)
	}

	fields := []zap.Field{
		zap.Stringer("order_id", created.ID()),
		zap.Stringer("status", created.Status()),
		zap.String("outcome", string(outcome)),
	}
	if chosen != nil {
		fields = append(fields, zap.Stringer("vehicle_id", chosen.ID()))
	}
	h.logger.Info("order created", fields...)

	return created, nil
}
