package gateway

import (
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	natspkg "github.com/sewamobil/sewamobil/internal/pkg/nats"
)

// NATS subjects for booking domain events
const (
	SubjectBookingCreated       = "bookings.created"
	SubjectBookingStatusChanged = "bookings.statuschanged"
)

// BookingGW implements the booking.BookingGW interface over NATS
type BookingGW struct {
	nats *natspkg.Client
}

// NewBookingGW creates a new booking event gateway
func NewBookingGW(natsClient *natspkg.Client) *BookingGW {
	return &BookingGW{nats: natsClient}
}

// PublishBookingCreated publishes a booking created event
func (g *BookingGW) PublishBookingCreated(event *models.BookingCreatedEvent) error {
	return g.nats.PublishJSON(SubjectBookingCreated, event)
}

// PublishBookingStatusChanged publishes a booking status transition event
func (g *BookingGW) PublishBookingStatusChanged(event *models.BookingStatusChangedEvent) error {
	return g.nats.PublishJSON(SubjectBookingStatusChanged, event)
}
