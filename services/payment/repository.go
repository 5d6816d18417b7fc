package payment

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// NotificationResult reports what a processed notification changed.
// Duplicate means the exact (order_id, transaction_status) pair was already
// applied by an earlier delivery; nothing was changed.
type NotificationResult struct {
	Payment    *models.Payment
	BookingOld models.BookingStatus
	BookingNew models.BookingStatus
	Duplicate  bool
}

// PaymentRepo defines the interface for payment data access. Notification
// processing runs in one transaction across the payments, bookings and
// coupons tables so a webhook either applies fully or not at all.
type PaymentRepo interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]*models.Payment, error)
	// ApplyNotification records the notification in the idempotency ledger
	// and moves the payment and booking lifecycle, all in a single
	// transaction. The ledger row only exists once the side effects
	// committed with it, so a retried delivery after a failed apply starts
	// over instead of being mistaken for a duplicate.
	ApplyNotification(ctx context.Context, n *models.PaymentNotification, raw string) (*NotificationResult, error)
}
