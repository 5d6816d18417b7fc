package coupon

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// CouponRepo defines the interface for coupon data access.
// Redemption and release happen inside booking/payment transactions, not
// here, so that used_count moves atomically with the records that justify it.
type CouponRepo interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	GetByID(ctx context.Context, id string) (*models.Coupon, error)
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	List(ctx context.Context) ([]*models.Coupon, error)
	Update(ctx context.Context, coupon *models.Coupon) error
	Delete(ctx context.Context, id string) error
}
