package coupon

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// CouponUC defines the interface for coupon business logic
type CouponUC interface {
	CreateCoupon(ctx context.Context, req *models.CouponRequest) (*models.Coupon, error)
	GetCoupon(ctx context.Context, id string) (*models.Coupon, error)
	ListCoupons(ctx context.Context) ([]*models.Coupon, error)
	UpdateCoupon(ctx context.Context, id string, req *models.CouponRequest) (*models.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	// ValidateCode checks every coupon invariant against an order total and
	// returns the coupon with its computed discount.
	ValidateCode(ctx context.Context, code string, orderTotal int) (*models.ValidateCouponResponse, error)
}
