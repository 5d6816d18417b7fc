package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/middleware"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	nrpkg "github.com/sewamobil/sewamobil/internal/pkg/newrelic"
	"github.com/sewamobil/sewamobil/internal/utils"
	"github.com/sewamobil/sewamobil/services/booking"
	"github.com/sewamobil/sewamobil/services/coupon"
	"github.com/sewamobil/sewamobil/services/fleet"
)

// BookingHandler handles HTTP requests for bookings
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// RegisterRoutes registers customer booking routes and admin management routes
func (h *BookingHandler) RegisterRoutes(e *echo.Echo, auth, adminGate echo.MiddlewareFunc) {
	g := e.Group("/api/bookings", auth)
	g.POST("", h.CreateBooking)
	g.GET("", h.ListMyBookings)
	g.GET("/:id", h.GetBooking)
	g.POST("/:id/cancel", h.CancelBooking)

	admin := e.Group("/api/admin/bookings", auth, adminGate)
	admin.GET("", h.ListAllBookings)
	admin.PUT("/:id", h.UpdateStatus)
}

// CreateBooking prices and creates a reservation for the authenticated user
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.Create")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.UserID = userID

	created, err := h.bookingUC.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", created)
}

// ListMyBookings lists the authenticated user's bookings
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), models.BookingFilter{
		UserID: userID.String(),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		logger.Error("failed to list bookings", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list bookings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", bookings)
}

// GetBooking retrieves one booking. Customers can only see their own;
// admins and staff can see any.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}

	role := middleware.RoleFromContext(c)
	if b.UserID != userID && role != models.RoleAdmin && role != models.RoleStaff && role != models.RolePartner {
		return utils.ForbiddenResponse(c, "Booking belongs to another user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", b)
}

// CancelBooking lets a customer cancel their own booking
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.Cancel")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	cancelled, err := h.bookingUC.CancelOwnBooking(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", cancelled)
}

// ListAllBookings lists bookings across all users for admins
func (h *BookingHandler) ListAllBookings(c echo.Context) error {
	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), models.BookingFilter{
		UserID: c.QueryParam("user_id"),
		CarID:  c.QueryParam("car_id"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		logger.Error("failed to list bookings", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list bookings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", bookings)
}

// UpdateStatus applies an admin lifecycle transition
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Booking.UpdateStatus")

	var req models.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	userID, _ := middleware.UserIDFromContext(c)
	updated, err := h.bookingUC.UpdateStatus(c.Request().Context(),
		c.Param("id"), models.BookingStatus(req.Status), userID.String())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking status updated", updated)
}

func (h *BookingHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound), errors.Is(err, fleet.ErrCarNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, booking.ErrInvalidTransition):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, booking.ErrCarUnavailable):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, booking.ErrNotBookingOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, coupon.ErrCouponInvalid):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, coupon.ErrCouponNotFound):
		return utils.UnprocessableEntityResponse(c, "coupon code not found")
	case errors.Is(err, booking.ErrInvalidDateRange):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error("booking handler error", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}
}
