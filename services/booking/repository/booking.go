package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/booking"
	"github.com/sewamobil/sewamobil/services/coupon"
)

// BookingRepo implements the booking.BookingRepo interface on Postgres
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sqlx.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

const bookingColumns = `
	id, user_id, car_id, pickup_time, return_time,
	pickup_location_id, dropoff_location_id, status, payment_method,
	coupon_id, coupon_code, days, base_price, extras_total,
	discount_amount, total_price, created_at, updated_at
`

// Create inserts a booking and its options in one transaction. The car row
// is locked first so two concurrent checkouts for the same car serialize;
// the coupon counter moves in the same transaction so a failed insert never
// burns a redemption.
func (r *BookingRepo) Create(ctx context.Context, b *models.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var carStatus string
	lockQuery := `SELECT status FROM cars WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &carStatus, lockQuery, b.CarID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking.ErrCarUnavailable
		}
		return fmt.Errorf("failed to lock car: %w", err)
	}
	if carStatus == string(models.CarStatusMaintenance) {
		return booking.ErrCarUnavailable
	}

	var overlaps int
	overlapQuery := `
		SELECT COUNT(*) FROM bookings
		WHERE car_id = $1 AND status IN ('pending', 'confirmed')
			AND pickup_time < $3 AND return_time > $2
	`
	if err := tx.GetContext(ctx, &overlaps, overlapQuery, b.CarID, b.PickupTime, b.ReturnTime); err != nil {
		return fmt.Errorf("failed to check booking overlap: %w", err)
	}
	if overlaps > 0 {
		return booking.ErrCarUnavailable
	}

	insertQuery := `
		INSERT INTO bookings (
			id, user_id, car_id, pickup_time, return_time,
			pickup_location_id, dropoff_location_id, status, payment_method,
			coupon_id, coupon_code, days, base_price, extras_total,
			discount_amount, total_price, created_at, updated_at
		) VALUES (
			:id, :user_id, :car_id, :pickup_time, :return_time,
			:pickup_location_id, :dropoff_location_id, :status, :payment_method,
			:coupon_id, :coupon_code, :days, :base_price, :extras_total,
			:discount_amount, :total_price, :created_at, :updated_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, insertQuery, b); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	optionQuery := `
		INSERT INTO booking_options (
			id, booking_id, option_code, label, price_per_day, days, total_price
		) VALUES (
			:id, :booking_id, :option_code, :label, :price_per_day, :days, :total_price
		)
	`
	for i := range b.Options {
		if _, err := tx.NamedExecContext(ctx, optionQuery, &b.Options[i]); err != nil {
			return fmt.Errorf("failed to insert booking option: %w", err)
		}
	}

	if b.CouponID != nil {
		redeemQuery := `
			UPDATE coupons
			SET used_count = used_count + 1, updated_at = NOW()
			WHERE id = $1 AND is_active
				AND (max_uses IS NULL OR used_count < max_uses)
		`
		result, err := tx.ExecContext(ctx, redeemQuery, b.CouponID)
		if err != nil {
			return fmt.Errorf("failed to redeem coupon: %w", err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return fmt.Errorf("%w: code has been fully redeemed", coupon.ErrCouponInvalid)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking with its options
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	var b models.Booking
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	optionsQuery := `
		SELECT id, booking_id, option_code, label, price_per_day, days, total_price
		FROM booking_options WHERE booking_id = $1 ORDER BY option_code
	`
	options := []models.BookingOption{}
	if err := r.db.SelectContext(ctx, &options, optionsQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get booking options: %w", err)
	}
	b.Options = options

	return &b, nil
}

// List retrieves bookings matching the filter, newest first. Options are
// not hydrated on listings.
func (r *BookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE 1=1`, bookingColumns)
	args := []interface{}{}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.CarID != "" {
		args = append(args, filter.CarID)
		query += fmt.Sprintf(" AND car_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	bookings := []*models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus persists a transition in one transaction. The old status is
// part of the WHERE clause so a concurrent transition loses cleanly. A
// cancellation releases the coupon redemption exactly once; confirming marks
// the car rented and finishing either way frees it.
func (r *BookingRepo) UpdateStatus(ctx context.Context, b *models.Booking, newStatus models.BookingStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`
	result, err := tx.ExecContext(ctx, updateQuery, newStatus, b.ID, b.Status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return booking.ErrInvalidTransition
	}

	if newStatus == models.BookingStatusCancelled && b.CouponID != nil {
		releaseQuery := `
			UPDATE coupons SET used_count = used_count - 1, updated_at = NOW()
			WHERE id = $1 AND used_count > 0
		`
		if _, err := tx.ExecContext(ctx, releaseQuery, b.CouponID); err != nil {
			return fmt.Errorf("failed to release coupon: %w", err)
		}
	}

	var carStatus models.CarStatus
	switch newStatus {
	case models.BookingStatusConfirmed:
		carStatus = models.CarStatusRented
	case models.BookingStatusCompleted, models.BookingStatusCancelled:
		carStatus = models.CarStatusAvailable
	}
	if carStatus != "" {
		carQuery := `
			UPDATE cars SET status = $1, updated_at = NOW()
			WHERE id = $2 AND status <> 'maintenance'
		`
		if _, err := tx.ExecContext(ctx, carQuery, carStatus, b.CarID); err != nil {
			return fmt.Errorf("failed to update car status: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}
	return nil
}
