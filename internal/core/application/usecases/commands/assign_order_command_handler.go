package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
)

// AssignOrderCommandHandler moves an order onto the requested vehicle. The
// previous vehicle, if any, gets the order's load back and the new one takes
// it on even past its capacity.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
	policy     policy.Policy
	recorder   MetricsRecorder
}

func NewAssignOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.OrderDispatcher,
	recorder MetricsRecorder,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     policy.New(),
		recorder:   recorderOrNop(recorder),
	}
}

func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanAssign(cmd.Principal()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	vehicleRepo := uow.VehicleRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if _, err = order.Transition(o.Status(), order.EventAssign); err != nil {
		return nil, err
	}

	target, previous, err := h.lockVehicles(ctx, vehicleRepo, cmd, o)
	if err != nil {
		return nil, err
	}

	if err = h.dispatcher.Reassign(o, previous, target); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = vehicleRepo.Update(ctx, target); err != nil {
		return nil, err
	}
	if previous != nil && previous != target {
		if err = vehicleRepo.Update(ctx, previous); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.OrderTransition(order.EventAssign)
	return o, nil
}

// lockVehicles locks the target and the current vehicle in id order so two
// crossing reassignments cannot deadlock. A reassignment to the current
// vehicle returns the same pointer twice.
func (h AssignOrderCommandHandler) lockVehicles(
	ctx context.Context,
	repo ports.VehicleRepository,
	cmd AssignOrderCommand,
	o *order.Order,
) (target, previous *vehicle.Vehicle, err error) {
	currentID := o.VehicleID()
	if currentID == nil {
		target, err = repo.GetForUpdate(ctx, cmd.VehicleID())
		return target, nil, err
	}

	if currentID.IsEqual(cmd.VehicleID()) {
		target, err = repo.GetForUpdate(ctx, cmd.VehicleID())
		return target, target, err
	}

	if currentID.Less(cmd.VehicleID()) {
		if previous, err = repo.GetForUpdate(ctx, *currentID); err != nil {
			return nil, nil, err
		}
		target, err = repo.GetForUpdate(ctx, cmd.VehicleID())
		return target, previous, err
	}

	if target, err = repo.GetForUpdate(ctx, cmd.VehicleID()); err != nil {
		return nil, nil, err
	}
	previous, err = repo.GetForUpdate(ctx, *currentID)
	return target, previous, err
}
