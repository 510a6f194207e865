package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/core/domain/services"
)

// AdminCancelOrderCommandHandler cancels PENDING and ASSIGNED orders. An
// assigned order's load goes back to its vehicle.
type AdminCancelOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
	policy     policy.Policy
	recorder   MetricsRecorder
}

func NewAdminCancelOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.OrderDispatcher,
	recorder MetricsRecorder,
) AdminCancelOrderCommandHandler {
	return AdminCancelOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     policy.New(),
		recorder:   recorderOrNop(recorder),
	}
}

func (h AdminCancelOrderCommandHandler) Handle(ctx context.Context, cmd AdminCancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanAdminCancel(cmd.Principal()); err != nil {
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
	if err = o.AdminCancel(); err != nil {
		return nil, err
	}

	var v *vehicle.Vehicle
	if vehicleID != nil {
		if v, err = uow.VehicleRepository().GetForUpdate(ctx, *vehicleID); err != nil {
			return nil, err
		}
		h.dispatcher.Release(o, v)
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	if v != nil {
		if err = uow.VehicleRepository().Update(ctx, v); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.OrderTransition(order.EventAdminCancel)
	return o, nil
}
