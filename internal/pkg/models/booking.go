package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// PaymentMethod is how the customer chose to pay
type PaymentMethod string

const (
	PaymentMethodPayAtLocation PaymentMethod = "pay_at_location"
	PaymentMethodOnlineFull    PaymentMethod = "online_full"
)

// Booking represents a car reservation for a date range.
// Invariant: TotalPrice = max(0, BasePrice + ExtrasTotal - DiscountAmount).
type Booking struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	UserID            uuid.UUID       `json:"user_id" db:"user_id"`
	CarID             uuid.UUID       `json:"car_id" db:"car_id"`
	PickupTime        time.Time       `json:"pickup_date" db:"pickup_time"`
	ReturnTime        time.Time       `json:"return_date" db:"return_time"`
	PickupLocationID  uuid.UUID       `json:"pickup_location_id" db:"pickup_location_id"`
	DropoffLocationID uuid.UUID       `json:"dropoff_location_id" db:"dropoff_location_id"`
	Status            BookingStatus   `json:"status" db:"status"`
	PaymentMethod     PaymentMethod   `json:"payment_method" db:"payment_method"`
	CouponID          *uuid.UUID      `json:"coupon_id,omitempty" db:"coupon_id"`
	CouponCode        string          `json:"coupon_code,omitempty" db:"coupon_code"`
	Days              int             `json:"days" db:"days"`
	BasePrice         int             `json:"base_price" db:"base_price"`
	ExtrasTotal       int             `json:"extras_total" db:"extras_total"`
	DiscountAmount    int             `json:"discount_amount" db:"discount_amount"`
	TotalPrice        int             `json:"total_price" db:"total_price"`
	Options           []BookingOption `json:"options,omitempty"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// BookingOption is a rental extra priced per day, owned by its booking
type BookingOption struct {
	ID          uuid.UUID `json:"id" db:"id"`
	BookingID   uuid.UUID `json:"booking_id" db:"booking_id"`
	OptionCode  string    `json:"option_code" db:"option_code"`
	Label       string    `json:"label" db:"label"`
	PricePerDay int       `json:"price_per_day" db:"price_per_day"`
	Days        int       `json:"days" db:"days"`
	TotalPrice  int       `json:"total_price" db:"total_price"`
}

// BookingOptionRequest selects a rental extra at checkout
type BookingOptionRequest struct {
	OptionCode  string `json:"option_code" validate:"required"`
	Label       string `json:"label" validate:"required"`
	PricePerDay int    `json:"price_per_day" validate:"required,gte=0"`
}

// CreateBookingRequest is the customer checkout payload
type CreateBookingRequest struct {
	UserID            uuid.UUID              `json:"-"`
	CarID             string                 `json:"car_id" validate:"required,uuid"`
	PickupDate        time.Time              `json:"pickup_date" validate:"required"`
	ReturnDate        time.Time              `json:"return_date" validate:"required"`
	PickupLocationID  string                 `json:"pickup_location_id" validate:"required,uuid"`
	DropoffLocationID string                 `json:"dropoff_location_id" validate:"required,uuid"`
	PaymentMethod     string                 `json:"payment_method" validate:"required,oneof=pay_at_location online_full"`
	CouponCode        string                 `json:"coupon_code" validate:"omitempty,max=32"`
	Options           []BookingOptionRequest `json:"options" validate:"dive"`
}

// BookingFilter narrows booking listings
type BookingFilter struct {
	UserID string
	CarID  string
	Status string
}

// UpdateBookingStatusRequest is the admin transition payload
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// BookingCreatedEvent is published when a booking is created
type BookingCreatedEvent struct {
	BookingID     uuid.UUID     `json:"booking_id"`
	UserID        uuid.UUID     `json:"user_id"`
	CarID         uuid.UUID     `json:"car_id"`
	TotalPrice    int           `json:"total_price"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Timestamp     time.Time     `json:"timestamp"`
}

// BookingStatusChangedEvent is published on every status transition
type BookingStatusChangedEvent struct {
	BookingID uuid.UUID     `json:"booking_id"`
	OldStatus BookingStatus `json:"old_status"`
	NewStatus BookingStatus `json:"new_status"`
	ChangedBy string        `json:"changed_by"`
	Timestamp time.Time     `json:"timestamp"`
}
