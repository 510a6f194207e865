package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/policy"
)

type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     policy.Policy
	recorder   MetricsRecorder
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, recorder MetricsRecorder) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy.New(),
		recorder:   recorderOrNop(recorder),
	}
}

// Handle cancels the requester's own PENDING order. Any other status is a
// precondition failure; a PENDING order holds no vehicle load.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = h.policy.CanCancel(cmd.Principal(), o); err != nil {
		return nil, err
	}

	if err = o.Cancel(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.OrderTransition(order.EventCancel)
	return o, nil
}
