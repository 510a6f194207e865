package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"
)

type StartShipmentCommandHandler struct {
	uowFactory UoWFactory
	policy     policy.Policy
	recorder   MetricsRecorder
}

func NewStartShipmentCommandHandler(uowFactory UoWFactory, recorder MetricsRecorder) StartShipmentCommandHandler {
	return StartShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy.New(),
		recorder:   recorderOrNop(recorder),
	}
}

// Handle moves an ASSIGNED order to SHIPPED. Only the driver of the assigned
// vehicle may do so.
func (h StartShipmentCommandHandler) Handle(ctx context.Context, cmd StartShipmentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
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

	var v *vehicle.Vehicle
	if id := o.VehicleID(); id != nil {
		if v, err = uow.VehicleRepository().Get(ctx, *id); err != nil {
			return nil, err
		}
	}

	if err = h.policy.CanStartShipment(cmd.Principal(), v); err != nil {
		return nil, err
	}

	if err = o.Ship(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.OrderTransition(order.EventShip)
	return o, nil
}
