package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/coupon"
)

// couponUC implements the coupon.CouponUC interface
type couponUC struct {
	repo     coupon.CouponRepo
	validate *validator.Validate
}

// NewCouponUC creates a new coupon use case
func NewCouponUC(repo coupon.CouponRepo, validate *validator.Validate) coupon.CouponUC {
	return &couponUC{
		repo:     repo,
		validate: validate,
	}
}

// CreateCoupon creates a new coupon from an admin request
func (uc *couponUC) CreateCoupon(ctx context.Context, req *models.CouponRequest) (*models.Coupon, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if existing, err := uc.repo.GetByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, coupon.ErrCouponCodeTaken
	}

	now := time.Now().UTC()
	c := &models.Coupon{
		ID:            uuid.New(),
		Code:          strings.ToUpper(req.Code),
		DiscountType:  models.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MinOrderTotal: req.MinOrderTotal,
		MaxUses:       req.MaxUses,
		StartsAt:      req.StartsAt,
		ExpiresAt:     req.ExpiresAt,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}

	logger.Info("coupon created",
		logger.String("coupon_id", c.ID.String()),
		logger.String("code", c.Code))

	return c, nil
}

// GetCoupon retrieves a coupon by id
func (uc *couponUC) GetCoupon(ctx context.Context, id string) (*models.Coupon, error) {
	return uc.repo.GetByID(ctx, id)
}

// ListCoupons lists all coupons
func (uc *couponUC) ListCoupons(ctx context.Context) ([]*models.Coupon, error) {
	return uc.repo.List(ctx)
}

// UpdateCoupon updates an existing coupon
func (uc *couponUC) UpdateCoupon(ctx context.Context, id string, req *models.CouponRequest) (*models.Coupon, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Code = strings.ToUpper(req.Code)
	c.DiscountType = models.DiscountType(req.DiscountType)
	c.DiscountValue = req.DiscountValue
	c.MinOrderTotal = req.MinOrderTotal
	c.MaxUses = req.MaxUses
	c.StartsAt = req.StartsAt
	c.ExpiresAt = req.ExpiresAt
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	c.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update coupon: %w", err)
	}

	return c, nil
}

// DeleteCoupon removes a coupon
func (uc *couponUC) DeleteCoupon(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ValidateCode checks a code against an order total and computes the discount
func (uc *couponUC) ValidateCode(ctx context.Context, code string, orderTotal int) (*models.ValidateCouponResponse, error) {
	c, err := uc.repo.GetByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, err
	}

	if err := CheckCoupon(c, orderTotal, time.Now().UTC()); err != nil {
		return nil, err
	}

	return &models.ValidateCouponResponse{
		Coupon:   c,
		Discount: ComputeDiscount(c, orderTotal),
	}, nil
}

// CheckCoupon verifies every coupon invariant against an order total at a
// point in time: active, inside the date window, usage remaining, and the
// order total meeting the minimum.
func CheckCoupon(c *models.Coupon, orderTotal int, now time.Time) error {
	if !c.IsActive {
		return fmt.Errorf("%w: code is inactive", coupon.ErrCouponInvalid)
	}
	if now.Before(c.StartsAt) {
		return fmt.Errorf("%w: code is not active yet", coupon.ErrCouponInvalid)
	}
	if now.After(c.ExpiresAt) {
		return fmt.Errorf("%w: code has expired", coupon.ErrCouponInvalid)
	}
	if c.MaxUses != nil && c.UsedCount >= *c.MaxUses {
		return fmt.Errorf("%w: code has been fully redeemed", coupon.ErrCouponInvalid)
	}
	if orderTotal < c.MinOrderTotal {
		return fmt.Errorf("%w: order total below minimum of %d", coupon.ErrCouponInvalid, c.MinOrderTotal)
	}
	return nil
}

// ComputeDiscount returns the discount amount for a subtotal, clamped to the
// subtotal so totals never go negative.
func ComputeDiscount(c *models.Coupon, subtotal int) int {
	var discount int
	switch c.DiscountType {
	case models.DiscountTypePercent:
		// round half up
		discount = (subtotal*c.DiscountValue + 50) / 100
	case models.DiscountTypeFixed:
		discount = c.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}
