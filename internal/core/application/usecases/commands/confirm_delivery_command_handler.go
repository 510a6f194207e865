package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/core/domain/services"
)

// ConfirmDeliveryCommandHandler sets the driver or requester confirmation.
// The second confirmation delivers the order and frees the vehicle's load.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
	policy     policy.Policy
	recorder   MetricsRecorder
}

func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.OrderDispatcher,
	recorder MetricsRecorder,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     policy.New(),
		recorder:   recorderOrNop(recorder),
	}
}

func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*order.Order, error) {
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
		if v, err = uow.VehicleRepository().GetForUpdate(ctx, *id); err != nil {
			return nil, err
		}
	}

	party, err := h.policy.CanConfirm(cmd.Principal(), o, v)
	if err != nil {
		return nil, err
	}

	delivered, err := o.ConfirmDelivery(party)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if delivered && v != nil {
		h.dispatcher.Release(o, v)
		if err = uow.VehicleRepository().Update(ctx, v); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if delivered {
		h.recorder.OrderTransition(order.EventDeliver)
	}
	return o, nil
}
