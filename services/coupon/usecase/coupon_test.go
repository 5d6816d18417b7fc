package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/coupon"
	"github.com/sewamobil/sewamobil/services/coupon/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCoupon() *models.Coupon {
	return &models.Coupon{
		ID:            uuid.New(),
		Code:          "HEMAT10",
		DiscountType:  models.DiscountTypePercent,
		DiscountValue: 10,
		MinOrderTotal: 0,
		StartsAt:      time.Now().Add(-24 * time.Hour),
		ExpiresAt:     time.Now().Add(24 * time.Hour),
		IsActive:      true,
	}
}

func TestCheckCoupon(t *testing.T) {
	now := time.Now().UTC()
	maxOne := 1

	tests := []struct {
		name    string
		mutate  func(c *models.Coupon)
		total   int
		wantErr bool
	}{
		{name: "valid", mutate: func(c *models.Coupon) {}, total: 100000},
		{name: "inactive", mutate: func(c *models.Coupon) { c.IsActive = false }, total: 100000, wantErr: true},
		{name: "not started", mutate: func(c *models.Coupon) { c.StartsAt = now.Add(time.Hour) }, total: 100000, wantErr: true},
		{name: "expired", mutate: func(c *models.Coupon) { c.ExpiresAt = now.Add(-time.Hour) }, total: 100000, wantErr: true},
		{
			name: "exhausted regardless of total",
			mutate: func(c *models.Coupon) {
				c.MaxUses = &maxOne
				c.UsedCount = 1
			},
			total: 100000000, wantErr: true,
		},
		{name: "below minimum", mutate: func(c *models.Coupon) { c.MinOrderTotal = 500000 }, total: 100000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := activeCoupon()
			tt.mutate(c)
			err := CheckCoupon(c, tt.total, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, coupon.ErrCouponInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComputeDiscount(t *testing.T) {
	percent := activeCoupon()
	// 10% of 900000
	assert.Equal(t, 90000, ComputeDiscount(percent, 900000))

	fixed := activeCoupon()
	fixed.DiscountType = models.DiscountTypeFixed
	fixed.DiscountValue = 50000
	assert.Equal(t, 50000, ComputeDiscount(fixed, 900000))

	// fixed discount larger than subtotal is clamped
	fixed.DiscountValue = 1000000
	assert.Equal(t, 900000, ComputeDiscount(fixed, 900000))
}

func TestValidateCode_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCouponRepo(ctrl)
	uc := NewCouponUC(mockRepo, validator.New())

	c := activeCoupon()
	mockRepo.EXPECT().GetByCode(gomock.Any(), "HEMAT10").Return(c, nil)

	resp, err := uc.ValidateCode(context.Background(), "hemat10", 900000)
	require.NoError(t, err)
	assert.Equal(t, c.ID, resp.Coupon.ID)
	assert.Equal(t, 90000, resp.Discount)
}

func TestValidateCode_Exhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCouponRepo(ctrl)
	uc := NewCouponUC(mockRepo, validator.New())

	maxOne := 1
	c := activeCoupon()
	c.MaxUses = &maxOne
	c.UsedCount = 1
	mockRepo.EXPECT().GetByCode(gomock.Any(), "HEMAT10").Return(c, nil)

	_, err := uc.ValidateCode(context.Background(), "HEMAT10", 5000000)
	assert.ErrorIs(t, err, coupon.ErrCouponInvalid)
}

func TestValidateCode_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCouponRepo(ctrl)
	uc := NewCouponUC(mockRepo, validator.New())

	mockRepo.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(nil, coupon.ErrCouponNotFound)

	_, err := uc.ValidateCode(context.Background(), "NOPE", 900000)
	assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
}

func TestCreateCoupon_CodeTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCouponRepo(ctrl)
	uc := NewCouponUC(mockRepo, validator.New())

	existing := activeCoupon()
	mockRepo.EXPECT().GetByCode(gomock.Any(), "HEMAT10").Return(existing, nil)

	req := &models.CouponRequest{
		Code:          "HEMAT10",
		DiscountType:  "percent",
		DiscountValue: 10,
		StartsAt:      time.Now(),
		ExpiresAt:     time.Now().Add(24 * time.Hour),
	}
	_, err := uc.CreateCoupon(context.Background(), req)
	assert.ErrorIs(t, err, coupon.ErrCouponCodeTaken)
}
