package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/core/domain/services"
)

// UnassignOrderCommandHandler returns an ASSIGNED order to PENDING and
// releases its load from the vehicle.
type UnassignOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
	policy     policy.Policy
	recorder   MetricsRecorder
}

func NewUnassignOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.OrderDispatcher,
	recorder MetricsRecorder,
) UnassignOrderCommandHandler {
	return UnassignOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     policy.New(),
		recorder:   recorderOrNop(recorder),
	}
}

func (h UnassignOrderCommandHandler) Handle(ctx context.Context, cmd UnassignOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanUnassign(cmd.Principal()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	vehicleID := o.VehicleID()
	if err = o.Unassign(); err != nil {
		return nil, err
	}

	v, err := uow.VehicleRepository().GetForUpdate(ctx, *vehicleID)
	if err != nil {
		return nil, err
	}
	h.dispatcher.Release(o, v)

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.VehicleRepository().Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.OrderTransition(order.EventUnassign)
	return o, nil
}
