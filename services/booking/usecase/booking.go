package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/booking"
	"github.com/sewamobil/sewamobil/services/coupon"
	"github.com/sewamobil/sewamobil/services/fleet"
)

// validTransitions is the booking lifecycle. Completed and cancelled are
// terminal.
var validTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

// bookingUC implements the booking.BookingUC interface
type bookingUC struct {
	repo     booking.BookingRepo
	fleetUC  fleet.FleetUC
	couponUC coupon.CouponUC
	gateway  booking.BookingGW
	validate *validator.Validate
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	repo booking.BookingRepo,
	fleetUC fleet.FleetUC,
	couponUC coupon.CouponUC,
	gateway booking.BookingGW,
	validate *validator.Validate,
) booking.BookingUC {
	return &bookingUC{
		repo:     repo,
		fleetUC:  fleetUC,
		couponUC: couponUC,
		gateway:  gateway,
		validate: validate,
	}
}

// RentalDays converts a date range into billable days: any started 24h
// block counts as a full day, and a rental is never shorter than one day.
func RentalDays(pickup, ret time.Time) int {
	d := ret.Sub(pickup)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// CreateBooking prices and persists a new reservation in pending status
func (uc *bookingUC) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if !req.ReturnDate.After(req.PickupDate) {
		return nil, booking.ErrInvalidDateRange
	}

	car, err := uc.fleetUC.GetCar(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	if car.Status == models.CarStatusMaintenance {
		return nil, booking.ErrCarUnavailable
	}

	days := RentalDays(req.PickupDate, req.ReturnDate)
	basePrice := car.PricePerDay * days

	bookingID := uuid.New()
	options := make([]models.BookingOption, 0, len(req.Options))
	extrasTotal := 0
	for _, opt := range req.Options {
		total := opt.PricePerDay * days
		extrasTotal += total
		options = append(options, models.BookingOption{
			ID:          uuid.New(),
			BookingID:   bookingID,
			OptionCode:  opt.OptionCode,
			Label:       opt.Label,
			PricePerDay: opt.PricePerDay,
			Days:        days,
			TotalPrice:  total,
		})
	}

	subtotal := basePrice + extrasTotal

	var couponID *uuid.UUID
	var couponCode string
	discount := 0
	if req.CouponCode != "" {
		validated, err := uc.couponUC.ValidateCode(ctx, req.CouponCode, subtotal)
		if err != nil {
			return nil, err
		}
		couponID = &validated.Coupon.ID
		couponCode = validated.Coupon.Code
		discount = validated.Discount
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	pickupLocationID, err := uuid.Parse(req.PickupLocationID)
	if err != nil {
		return nil, fmt.Errorf("validation error: invalid pickup_location_id: %w", err)
	}
	dropoffLocationID, err := uuid.Parse(req.DropoffLocationID)
	if err != nil {
		return nil, fmt.Errorf("validation error: invalid dropoff_location_id: %w", err)
	}

	now := time.Now().UTC()
	b := &models.Booking{
		ID:                bookingID,
		UserID:            req.UserID,
		CarID:             car.ID,
		PickupTime:        req.PickupDate,
		ReturnTime:        req.ReturnDate,
		PickupLocationID:  pickupLocationID,
		DropoffLocationID: dropoffLocationID,
		Status:            models.BookingStatusPending,
		PaymentMethod:     models.PaymentMethod(req.PaymentMethod),
		CouponID:          couponID,
		CouponCode:        couponCode,
		Days:              days,
		BasePrice:         basePrice,
		ExtrasTotal:       extrasTotal,
		DiscountAmount:    discount,
		TotalPrice:        total,
		Options:           options,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		logger.String("booking_id", b.ID.String()),
		logger.String("user_id", b.UserID.String()),
		logger.String("car_id", b.CarID.String()),
		logger.Int("total_price", b.TotalPrice))

	if uc.gateway != nil {
		event := &models.BookingCreatedEvent{
			BookingID:     b.ID,
			UserID:        b.UserID,
			CarID:         b.CarID,
			TotalPrice:    b.TotalPrice,
			PaymentMethod: b.PaymentMethod,
			Timestamp:     now,
		}
		if err := uc.gateway.PublishBookingCreated(event); err != nil {
			logger.Warn("failed to publish booking created event",
				logger.String("booking_id", b.ID.String()),
				logger.ErrorField(err))
		}
	}

	return b, nil
}

// GetBooking retrieves a booking by id
func (uc *bookingUC) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return uc.repo.GetByID(ctx, id)
}

// ListBookings lists bookings matching the filter
func (uc *bookingUC) ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	return uc.repo.List(ctx, filter)
}

// UpdateStatus applies a lifecycle transition
func (uc *bookingUC) UpdateStatus(ctx context.Context, id string, newStatus models.BookingStatus, changedBy string) (*models.Booking, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, b, newStatus, changedBy)
}

// CancelOwnBooking lets a customer cancel their own booking
func (uc *bookingUC) CancelOwnBooking(ctx context.Context, id string, userID uuid.UUID) (*models.Booking, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, booking.ErrNotBookingOwner
	}
	return uc.transition(ctx, b, models.BookingStatusCancelled, userID.String())
}

func (uc *bookingUC) transition(ctx context.Context, b *models.Booking, newStatus models.BookingStatus, changedBy string) (*models.Booking, error) {
	if !TransitionAllowed(b.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", booking.ErrInvalidTransition, b.Status, newStatus)
	}

	oldStatus := b.Status
	if err := uc.repo.UpdateStatus(ctx, b, newStatus); err != nil {
		return nil, err
	}
	b.Status = newStatus
	b.UpdatedAt = time.Now().UTC()

	logger.Info("booking status changed",
		logger.String("booking_id", b.ID.String()),
		logger.String("old_status", string(oldStatus)),
		logger.String("new_status", string(newStatus)))

	if uc.gateway != nil {
		event := &models.BookingStatusChangedEvent{
			BookingID: b.ID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			ChangedBy: changedBy,
			Timestamp: b.UpdatedAt,
		}
		if err := uc.gateway.PublishBookingStatusChanged(event); err != nil {
			logger.Warn("failed to publish booking status event",
				logger.String("booking_id", b.ID.String()),
				logger.ErrorField(err))
		}
	}

	return b, nil
}

// TransitionAllowed reports whether the lifecycle permits moving a booking
// from one status to another.
func TransitionAllowed(from, to models.BookingStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
