package models

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType determines how a coupon's value is applied
type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

// Coupon represents a discount code. MaxUses nil means unlimited.
// Invariant: UsedCount never exceeds MaxUses when MaxUses is set.
type Coupon struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Code          string       `json:"code" db:"code"`
	DiscountType  DiscountType `json:"discount_type" db:"discount_type"`
	DiscountValue int          `json:"discount_value" db:"discount_value"`
	MinOrderTotal int          `json:"min_order_total" db:"min_order_total"`
	MaxUses       *int         `json:"max_uses" db:"max_uses"`
	UsedCount     int          `json:"used_count" db:"used_count"`
	StartsAt      time.Time    `json:"starts_at" db:"starts_at"`
	ExpiresAt     time.Time    `json:"expires_at" db:"expires_at"`
	IsActive      bool         `json:"is_active" db:"is_active"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// CouponRequest is the payload for creating or updating a coupon
type CouponRequest struct {
	Code          string    `json:"code" validate:"required,uppercase,max=32"`
	DiscountType  string    `json:"discount_type" validate:"required,oneof=percent fixed"`
	DiscountValue int       `json:"discount_value" validate:"required,gt=0"`
	MinOrderTotal int       `json:"min_order_total" validate:"gte=0"`
	MaxUses       *int      `json:"max_uses" validate:"omitempty,gt=0"`
	StartsAt      time.Time `json:"starts_at" validate:"required"`
	ExpiresAt     time.Time `json:"expires_at" validate:"required,gtfield=StartsAt"`
	IsActive      *bool     `json:"is_active"`
}

// ValidateCouponRequest is the payload for checking a code against an order total
type ValidateCouponRequest struct {
	Code       string `json:"code" validate:"required"`
	OrderTotal int    `json:"order_total" validate:"required,gt=0"`
}

// ValidateCouponResponse reports a valid coupon and its computed discount
type ValidateCouponResponse struct {
	Coupon   *Coupon `json:"coupon"`
	Discount int     `json:"discount"`
}
