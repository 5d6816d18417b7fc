package booking

import "github.com/sewamobil/sewamobil/internal/pkg/models"

// BookingGW defines the interface for publishing booking domain events
type BookingGW interface {
	PublishBookingCreated(event *models.BookingCreatedEvent) error
	PublishBookingStatusChanged(event *models.BookingStatusChangedEvent) error
}
