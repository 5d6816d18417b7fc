package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	nrpkg "github.com/sewamobil/sewamobil/internal/pkg/newrelic"
	"github.com/sewamobil/sewamobil/internal/utils"
	"github.com/sewamobil/sewamobil/services/coupon"
)

// CouponHandler handles HTTP requests for coupon administration
type CouponHandler struct {
	couponUC coupon.CouponUC
}

// NewCouponHandler creates a new coupon HTTP handler
func NewCouponHandler(couponUC coupon.CouponUC) *CouponHandler {
	return &CouponHandler{couponUC: couponUC}
}

// RegisterRoutes registers the admin coupon routes
func (h *CouponHandler) RegisterRoutes(e *echo.Echo, auth, adminGate echo.MiddlewareFunc) {
	admin := e.Group("/api/admin/coupons", auth, adminGate)
	admin.POST("", h.CreateCoupon)
	admin.GET("", h.ListCoupons)
	admin.GET("/:id", h.GetCoupon)
	admin.PUT("/:id", h.UpdateCoupon)
	admin.DELETE("/:id", h.DeleteCoupon)
	admin.POST("/validate", h.ValidateCoupon)
}

// CreateCoupon handles coupon creation
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Coupon.Create")

	var req models.CouponRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	created, err := h.couponUC.CreateCoupon(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Coupon created", created)
}

// ListCoupons lists all coupons
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	coupons, err := h.couponUC.ListCoupons(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list coupons")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Coupons retrieved", coupons)
}

// GetCoupon retrieves one coupon
func (h *CouponHandler) GetCoupon(c echo.Context) error {
	found, err := h.couponUC.GetCoupon(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Coupon retrieved", found)
}

// UpdateCoupon updates a coupon definition
func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Coupon.Update")

	var req models.CouponRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	updated, err := h.couponUC.UpdateCoupon(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Coupon updated", updated)
}

// DeleteCoupon removes a coupon
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	if err := h.couponUC.DeleteCoupon(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Coupon deleted", nil)
}

// ValidateCoupon checks a code against an order total
func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Coupon.Validate")

	var req models.ValidateCouponRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Code == "" || req.OrderTotal <= 0 {
		return utils.BadRequestResponse(c, "code and order_total are required")
	}

	resp, err := h.couponUC.ValidateCode(c.Request().Context(), req.Code, req.OrderTotal)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Coupon is valid", resp)
}

func (h *CouponHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, coupon.ErrCouponNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, coupon.ErrCouponInvalid):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, coupon.ErrCouponCodeTaken):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error("coupon handler error", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}
}
