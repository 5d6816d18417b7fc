package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
type BookingUC interface {
	CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error)
	UpdateStatus(ctx context.Context, id string, newStatus models.BookingStatus, changedBy string) (*models.Booking, error)
	CancelOwnBooking(ctx context.Context, id string, userID uuid.UUID) (*models.Booking, error)
}
