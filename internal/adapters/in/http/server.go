package http

import (
	"net/http"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/policy"
	"fleetdispatch/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder     commands.CreateOrderCommandHandler
	AssignOrder     commands.AssignOrderCommandHandler
	UnassignOrder   commands.UnassignOrderCommandHandler
	StartShipment   commands.StartShipmentCommandHandler
	ConfirmDelivery commands.ConfirmDeliveryCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	AdminCancel     commands.AdminCancelOrderCommandHandler
	CreateZone      commands.CreateZoneCommandHandler
	DeleteZone      commands.DeleteZoneCommandHandler
	CreateVehicle   commands.CreateVehicleCommandHandler
	UpdateVehicle   commands.UpdateVehicleCommandHandler
	DeleteVehicle   commands.DeleteVehicleCommandHandler

	// Query handlers
	ListOrders         queries.ListOrdersQueryHandler
	ListDriverOrders   queries.ListDriverOrdersQueryHandler
	CompatibleVehicles queries.GetCompatibleVehiclesQueryHandler
	ListZones          queries.ListZonesQueryHandler
	ListVehicles       queries.ListVehiclesQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h        Handlers
	validate *validator.Validate
	logger   *zap.Logger
}

func NewServer(h Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		h:        h,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Register mounts the routes on e. Everything under /api/v1 goes through
// auth; /health and /metrics are open.
func (s *Server) Register(e *echo.Echo, auth []echo.MiddlewareFunc, metrics http.Handler) {
	e.GET("/health", s.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api/v1", auth...)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id/compatible-vehicles", s.CompatibleVehicles)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/orders/:id/unassign", s.UnassignOrder)
	api.POST("/orders/:id/ship", s.StartShipment)
	api.POST("/orders/:id/confirm-delivery", s.ConfirmDelivery)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/admin-cancel", s.AdminCancelOrder)
	api.GET("/driver/orders", s.ListDriverOrders)

	api.POST("/zones", s.CreateZone)
	api.GET("/zones", s.ListZones)
	api.DELETE("/zones/:id", s.DeleteZone)

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles", s.ListVehicles)
	api.PATCH("/vehicles/:id", s.UpdateVehicle)
	api.DELETE("/vehicles/:id", s.DeleteVehicle)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := s.validate.Struct(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

func idParam(c echo.Context) (kernel.UUID, error) {
	return parseID("id", c.Param("id"))
}

// orderAction runs one of the single-order transitions and answers with the
// resulting order.
func (s *Server) orderAction(
	c echo.Context,
	run func(p policy.Principal, orderID kernel.UUID) (*order.Order, error),
) error {
	orderID, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := run(principalFrom(c), orderID)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponse(queries.NewOrderView(o)))
}
