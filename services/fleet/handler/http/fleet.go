package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	nrpkg "github.com/sewamobil/sewamobil/internal/pkg/newrelic"
	"github.com/sewamobil/sewamobil/internal/utils"
	"github.com/sewamobil/sewamobil/services/fleet"
)

// FleetHandler handles HTTP requests for cars and locations
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{fleetUC: fleetUC}
}

// RegisterRoutes registers public browse routes and admin management routes
func (h *FleetHandler) RegisterRoutes(e *echo.Echo, auth, adminGate echo.MiddlewareFunc) {
	e.GET("/api/cars", h.ListCars)
	e.GET("/api/cars/:id", h.GetCar)
	e.GET("/api/locations", h.ListLocations)

	admin := e.Group("/api/admin", auth, adminGate)
	admin.POST("/cars", h.CreateCar)
	admin.PUT("/cars/:id", h.UpdateCar)
	admin.DELETE("/cars/:id", h.DeleteCar)
	admin.POST("/locations", h.CreateLocation)
}

// ListCars lists cars, optionally filtered by query params
func (h *FleetHandler) ListCars(c echo.Context) error {
	filter := models.CarFilter{
		Category:     c.QueryParam("category"),
		Transmission: c.QueryParam("transmission"),
		LocationID:   c.QueryParam("location_id"),
		Status:       c.QueryParam("status"),
	}

	cars, err := h.fleetUC.ListCars(c.Request().Context(), filter)
	if err != nil {
		logger.Error("failed to list cars", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list cars")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cars retrieved", cars)
}

// GetCar retrieves one car
func (h *FleetHandler) GetCar(c echo.Context) error {
	car, err := h.fleetUC.GetCar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Car retrieved", car)
}

// CreateCar handles car creation
func (h *FleetHandler) CreateCar(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fleet.CreateCar")

	var req models.CarRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.fleetUC.CreateCar(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Car created", created)
}

// UpdateCar updates a car definition
func (h *FleetHandler) UpdateCar(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fleet.UpdateCar")

	var req models.CarRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.fleetUC.UpdateCar(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Car updated", updated)
}

// DeleteCar removes a car
func (h *FleetHandler) DeleteCar(c echo.Context) error {
	if err := h.fleetUC.DeleteCar(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Car deleted", nil)
}

// ListLocations lists all pickup/dropoff locations
func (h *FleetHandler) ListLocations(c echo.Context) error {
	locations, err := h.fleetUC.ListLocations(c.Request().Context())
	if err != nil {
		logger.Error("failed to list locations", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list locations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Locations retrieved", locations)
}

// CreateLocation handles location creation
func (h *FleetHandler) CreateLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Fleet.CreateLocation")

	var req models.LocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.fleetUC.CreateLocation(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Location created", created)
}

func (h *FleetHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, fleet.ErrCarNotFound), errors.Is(err, fleet.ErrLocationNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, fleet.ErrCarHasBookings):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error("fleet handler error", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}
}
