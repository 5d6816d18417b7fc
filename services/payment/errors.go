package payment

import "errors"

var (
	// ErrPaymentNotFound is returned when no payment matches the lookup
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrBookingNotPayable is returned when checkout is attempted on a
	// booking that is not pending or was not created with online payment
	ErrBookingNotPayable = errors.New("booking cannot be paid online")
	// ErrPaymentProvider is returned when the payment provider rejects or
	// fails the transaction request
	ErrPaymentProvider = errors.New("payment provider error")
	// ErrWebhookVerification is returned when a notification signature
	// does not match
	ErrWebhookVerification = errors.New("webhook signature verification failed")
)
