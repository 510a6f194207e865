package http

import (
	"net/http"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/policy"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. The order comes back ASSIGNED when
// a vehicle was found and PENDING otherwise.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	parcel, route, err := req.toDomain()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(principalFrom(c), parcel, route)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, newOrderResponse(queries.NewOrderView(o)))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListOrdersQuery(principalFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponses(views))
}

// ListDriverOrders handles GET /api/v1/driver/orders.
func (s *Server) ListDriverOrders(c echo.Context) error {
	query, err := queries.NewListDriverOrdersQuery(principalFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListDriverOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponses(views))
}

// CompatibleVehicles handles GET /api/v1/orders/:id/compatible-vehicles.
func (s *Server) CompatibleVehicles(c echo.Context) error {
	orderID, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetCompatibleVehiclesQuery(principalFrom(c), orderID)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.CompatibleVehicles.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newVehicleResponses(views))
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(c echo.Context) error {
	var req AssignOrderRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	vehicleID, err := parseID("vehicle_id", req.VehicleID)
	if err != nil {
		return s.fail(c, err)
	}

	return s.orderAction(c, func(p policy.Principal, orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewAssignOrderCommand(p, orderID, vehicleID)
		if err != nil {
			return nil, err
		}
		return s.h.AssignOrder.Handle(c.Request().Context(), cmd)
	})
}

// UnassignOrder handles POST /api/v1/orders/:id/unassign.
func (s *Server) UnassignOrder(c echo.Context) error {
	return s.orderAction(c, func(p policy.Principal, orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewUnassignOrderCommand(p, orderID)
		if err != nil {
			return nil, err
		}
		return s.h.UnassignOrder.Handle(c.Request().Context(), cmd)
	})
}

// StartShipment handles POST /api/v1/orders/:id/ship.
func (s *Server) StartShipment(c echo.Context) error {
	return s.orderAction(c, func(p policy.Principal, orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewStartShipmentCommand(p, orderID)
		if err != nil {
			return nil, err
		}
		return s.h.StartShipment.Handle(c.Request().Context(), cmd)
	})
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm-delivery.
func (s *Server) ConfirmDelivery(c echo.Context) error {
	return s.orderAction(c, func(p policy.Principal, orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewConfirmDeliveryCommand(p, orderID)
		if err != nil {
			return nil, err
		}
		return s.h.ConfirmDelivery.Handle(c.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	return s.orderAction(c, func(p policy.Principal, orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewCancelOrderCommand(p, orderID)
		if err != nil {
			return nil, err
		}
		return s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	})
}

// AdminCancelOrder handles POST /api/v1/orders/:id/admin-cancel.
func (s *Server) AdminCancelOrder(c echo.Context) error {
	return s.orderAction(c, func(p policy.Principal, orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewAdminCancelOrderCommand(p, orderID)
		if err != nil {
			return nil, err
		}
		return s.h.AdminCancel.Handle(c.Request().Context(), cmd)
	})
}
