package fleet

import "errors"

var (
	// ErrCarNotFound is returned when no car matches the id
	ErrCarNotFound = errors.New("car not found")
	// ErrLocationNotFound is returned when no location matches the id
	ErrLocationNotFound = errors.New("location not found")
	// ErrCarHasBookings is returned when deleting a car that still has
	// pending or confirmed bookings
	ErrCarHasBookings = errors.New("car has active bookings")
)
