package http

import (
	"net/http"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateZone handles POST /api/v1/zones.
func (s *Server) CreateZone(c echo.Context) error {
	var req CreateZoneRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateZoneCommand(principalFrom(c), req.Name, req.Boundary)
	if err != nil {
		return s.fail(c, err)
	}

	z, err := s.h.CreateZone.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, newZoneResponse(queries.NewZoneView(z)))
}

// ListZones handles GET /api/v1/zones.
func (s *Server) ListZones(c echo.Context) error {
	query, err := queries.NewListZonesQuery(principalFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListZones.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	resp := make([]ZoneResponse, len(views))
	for i, v := range views {
		resp[i] = newZoneResponse(v)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteZone handles DELETE /api/v1/zones/:id.
func (s *Server) DeleteZone(c echo.Context) error {
	zoneID, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteZoneCommand(principalFrom(c), zoneID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteZone.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(c echo.Context) error {
	var req CreateVehicleRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	capacity, err := kernel.NewPositiveLoad(req.MaxWeightKg, req.MaxVolumeM3)
	if err != nil {
		return s.fail(c, err)
	}
	zoneID, err := parseOptionalID("zone_id", req.ZoneID)
	if err != nil {
		return s.fail(c, err)
	}
	driverID, err := parseOptionalID("driver_id", req.DriverID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(principalFrom(c), req.VehicleNumber, capacity, zoneID, driverID)
	if err != nil {
		return s.fail(c, err)
	}

	v, err := s.h.CreateVehicle.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, newVehicleResponse(queries.NewVehicleView(v)))
}

// ListVehicles handles GET /api/v1/vehicles.
func (s *Server) ListVehicles(c echo.Context) error {
	query, err := queries.NewListVehiclesQuery(principalFrom(c))
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListVehicles.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newVehicleResponses(views))
}

// UpdateVehicle handles PATCH /api/v1/vehicles/:id.
func (s *Server) UpdateVehicle(c echo.Context) error {
	vehicleID, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdateVehicleRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	changes, err := req.toChanges()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateVehicleCommand(principalFrom(c), vehicleID, changes)
	if err != nil {
		return s.fail(c, err)
	}

	v, err := s.h.UpdateVehicle.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newVehicleResponse(queries.NewVehicleView(v)))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id.
func (s *Server) DeleteVehicle(c echo.Context) error {
	vehicleID, err := idParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(principalFrom(c), vehicleID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteVehicle.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
