package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/payment"
)

// PaymentRepo implements the payment.PaymentRepo interface on Postgres
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

const paymentColumns = `
	id, booking_id, provider, order_id, transaction_id, gross_amount,
	transaction_status, fraud_status, raw_request, raw_response,
	raw_notification, paid_at, created_at, updated_at
`

// Create inserts a new payment attempt
func (r *PaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (
			id, booking_id, provider, order_id, transaction_id, gross_amount,
			transaction_status, fraud_status, raw_request, raw_response,
			raw_notification, paid_at, created_at, updated_at
		) VALUES (
			:id, :booking_id, :provider, :order_id, :transaction_id, :gross_amount,
			:transaction_status, :fraud_status, :raw_request, :raw_response,
			:raw_notification, :paid_at, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// GetByOrderID retrieves a payment by its provider order id
func (r *PaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE order_id = $1`, paymentColumns)

	var p models.Payment
	if err := r.db.GetContext(ctx, &p, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

// ListByBookingID retrieves all payment attempts for a booking, newest first
func (r *PaymentRepo) ListByBookingID(ctx context.Context, bookingID string) ([]*models.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE booking_id = $1 ORDER BY created_at DESC`, paymentColumns)

	payments := []*models.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, bookingID); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ApplyNotification updates the payment row and moves the booking lifecycle
// in one transaction. The ledger insert runs first inside that transaction:
// the unique (order_id, transaction_status) constraint short-circuits a
// replay, and because the ledger row commits together with the side effects,
// a delivery whose apply failed leaves no ledger row behind and the
// provider's retry starts over. The payment row is locked so concurrent
// notifications for the same order serialize. A terminal failure releases
// the coupon and frees the car; a settlement confirms the booking. Bookings
// that already left pending are not touched.
func (r *PaymentRepo) ApplyNotification(ctx context.Context, n *models.PaymentNotification, raw string) (*payment.NotificationResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ledgerQuery := `
		INSERT INTO payment_notifications (
			id, order_id, transaction_id, transaction_status, status_code,
			gross_amount, fraud_status, payment_type, raw_payload, received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (order_id, transaction_status) DO NOTHING
	`
	ledger, err := tx.ExecContext(ctx, ledgerQuery,
		uuid.New(), n.OrderID, n.TransactionID, n.TransactionStatus,
		n.StatusCode, n.GrossAmount, n.FraudStatus, n.PaymentType,
		raw, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}
	if rows, _ := ledger.RowsAffected(); rows == 0 {
		return &payment.NotificationResult{Duplicate: true}, nil
	}

	var p models.Payment
	lockQuery := fmt.Sprintf(`SELECT %s FROM payments WHERE order_id = $1 FOR UPDATE`, paymentColumns)
	if err := tx.GetContext(ctx, &p, lockQuery, n.OrderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to lock payment: %w", err)
	}

	now := time.Now().UTC()
	newStatus := models.TransactionStatus(n.TransactionStatus)

	// capture is only money in the bank when the fraud check accepted it;
	// a challenged capture updates the payment row and nothing else
	settles := newStatus == models.TransactionStatusSettlement ||
		(newStatus == models.TransactionStatusCapture && n.FraudStatus == models.FraudStatusAccept)

	var paidAt *time.Time
	if settles {
		paidAt = &now
	}

	updateQuery := `
		UPDATE payments
		SET transaction_id = $1, transaction_status = $2, fraud_status = $3,
			gross_amount = $4, paid_at = COALESCE($5, paid_at), updated_at = $6
		WHERE id = $7
	`
	grossAmount := parseGrossAmount(n.GrossAmount)
	if _, err := tx.ExecContext(ctx, updateQuery,
		n.TransactionID, newStatus, n.FraudStatus, grossAmount, paidAt, now, p.ID); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	p.TransactionID = n.TransactionID
	p.TransactionStatus = newStatus
	p.FraudStatus = n.FraudStatus
	p.GrossAmount = grossAmount
	if paidAt != nil {
		p.PaidAt = paidAt
	}

	var bookingStatus models.BookingStatus
	var couponID *uuid.UUID
	bookingQuery := `SELECT status, coupon_id FROM bookings WHERE id = $1 FOR UPDATE`
	row := tx.QueryRowxContext(ctx, bookingQuery, p.BookingID)
	if err := row.Scan(&bookingStatus, &couponID); err != nil {
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	result := &payment.NotificationResult{
		Payment:    &p,
		BookingOld: bookingStatus,
		BookingNew: bookingStatus,
	}

	if bookingStatus == models.BookingStatusPending {
		switch {
		case settles:
			if err := r.moveBooking(ctx, tx, p.BookingID, models.BookingStatusConfirmed, models.CarStatusRented); err != nil {
				return nil, err
			}
			result.BookingNew = models.BookingStatusConfirmed
		case newStatus == models.TransactionStatusExpire,
			newStatus == models.TransactionStatusCancel,
			newStatus == models.TransactionStatusDeny:
			if err := r.moveBooking(ctx, tx, p.BookingID, models.BookingStatusCancelled, models.CarStatusAvailable); err != nil {
				return nil, err
			}
			if couponID != nil {
				releaseQuery := `
					UPDATE coupons SET used_count = used_count - 1, updated_at = NOW()
					WHERE id = $1 AND used_count > 0
				`
				if _, err := tx.ExecContext(ctx, releaseQuery, couponID); err != nil {
					return nil, fmt.Errorf("failed to release coupon: %w", err)
				}
			}
			result.BookingNew = models.BookingStatusCancelled
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit notification: %w", err)
	}
	return result, nil
}

func (r *PaymentRepo) moveBooking(ctx context.Context, tx *sqlx.Tx, bookingID uuid.UUID, status models.BookingStatus, carStatus models.CarStatus) error {
	bookingQuery := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`
	if _, err := tx.ExecContext(ctx, bookingQuery, status, bookingID); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	carQuery := `
		UPDATE cars SET status = $1, updated_at = NOW()
		WHERE id = (SELECT car_id FROM bookings WHERE id = $2) AND status <> 'maintenance'
	`
	if _, err := tx.ExecContext(ctx, carQuery, carStatus, bookingID); err != nil {
		return fmt.Errorf("failed to update car status: %w", err)
	}
	return nil
}

// parseGrossAmount converts the provider's decimal string ("810000.00")
// into whole rupiah. Malformed values fall back to zero; the signature
// already covered the raw string.
func parseGrossAmount(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f + 0.5)
}
