package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the id
	ErrBookingNotFound = errors.New("booking not found")
	// ErrCarUnavailable is returned when the car is not rentable or its
	// dates overlap an existing pending/confirmed booking
	ErrCarUnavailable = errors.New("car is not available for the requested dates")
	// ErrInvalidDateRange is returned when return time is not after pickup
	ErrInvalidDateRange = errors.New("return date must be after pickup date")
	// ErrInvalidTransition is returned on a status change the lifecycle
	// does not allow
	ErrInvalidTransition = errors.New("invalid booking status transition")
	// ErrNotBookingOwner is returned when a customer touches a booking
	// that is not theirs
	ErrNotBookingOwner = errors.New("booking belongs to another user")
)
