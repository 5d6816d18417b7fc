package coupon

import "errors"

var (
	// ErrCouponNotFound is returned when no coupon matches the id or code
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponInvalid is returned when a coupon exists but cannot be
	// applied: inactive, outside its date window, exhausted, or the order
	// total is below the minimum. Specific reasons wrap this sentinel.
	ErrCouponInvalid = errors.New("coupon invalid")
	// ErrCouponCodeTaken is returned when creating a coupon with a code
	// that already exists
	ErrCouponCodeTaken = errors.New("coupon code already exists")
)
