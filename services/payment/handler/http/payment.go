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
	"github.com/sewamobil/sewamobil/services/payment"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// RegisterRoutes registers the payment routes. The notification endpoint is
// unauthenticated: the provider calls it and the signature check is the
// authentication.
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/api/payments")
	g.POST("/checkout", h.Checkout, auth)
	g.GET("/booking/:booking_id", h.ListByBooking, auth)
	g.POST("/notification", h.Notification)
}

// Checkout starts online payment for a pending booking
func (h *PaymentHandler) Checkout(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Checkout")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.UserID = userID

	resp, err := h.paymentUC.Checkout(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment initiated", resp)
}

// Notification receives provider webhooks
func (h *PaymentHandler) Notification(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Notification")

	var n models.PaymentNotification
	if err := c.Bind(&n); err != nil {
		return utils.BadRequestResponse(c, "Invalid notification body: "+err.Error())
	}

	if err := h.paymentUC.HandleNotification(c.Request().Context(), &n); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification processed", nil)
}

// ListByBooking lists payment attempts for one of the user's bookings
func (h *PaymentHandler) ListByBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}
	role := middleware.RoleFromContext(c)

	payments, err := h.paymentUC.ListByBooking(c.Request().Context(), c.Param("booking_id"), userID, role)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved", payments)
}

func (h *PaymentHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, payment.ErrWebhookVerification):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, payment.ErrPaymentProvider):
		return utils.BadGatewayResponse(c, err.Error())
	case errors.Is(err, payment.ErrBookingNotPayable):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, payment.ErrPaymentNotFound), errors.Is(err, booking.ErrBookingNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, booking.ErrNotBookingOwner):
		return utils.ForbiddenResponse(c, err.Error())
	default:
		logger.Error("payment handler error", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}
}
