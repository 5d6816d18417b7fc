package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic
type PaymentUC interface {
	// Checkout creates a provider transaction for a pending online
	// booking and returns the redirect the customer completes payment on.
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	// HandleNotification processes a provider webhook. Replays of an
	// already-processed notification are acknowledged without effect.
	HandleNotification(ctx context.Context, n *models.PaymentNotification) error
	// ListByBooking lists payment attempts for a booking the requester owns
	// (or any booking for back-office roles).
	ListByBooking(ctx context.Context, bookingID string, requesterID uuid.UUID, requesterRole string) ([]*models.Payment, error)
}
