package booking

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access.
// Create and UpdateStatus run inside a single database transaction so the
// booking row, its options, coupon usage counters and the car status can
// never diverge.
type BookingRepo interface {
	// Create inserts the booking and its options, verifies the car is
	// available for the date range under a row lock, and redeems the
	// coupon atomically when one is attached.
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error)
	// UpdateStatus persists a transition, releases the coupon when the
	// booking is cancelled, and keeps the car status in step.
	UpdateStatus(ctx context.Context, b *models.Booking, newStatus models.BookingStatus) error
}
