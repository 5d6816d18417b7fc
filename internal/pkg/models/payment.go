package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus mirrors the payment provider's transaction states
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusSettlement TransactionStatus = "settlement"
	TransactionStatusCapture    TransactionStatus = "capture"
	TransactionStatusExpire     TransactionStatus = "expire"
	TransactionStatusCancel     TransactionStatus = "cancel"
	TransactionStatusDeny       TransactionStatus = "deny"
)

// Fraud statuses attached to capture notifications. A capture only counts
// as paid when the provider's fraud check accepted it.
const (
	FraudStatusAccept    = "accept"
	FraudStatusChallenge = "challenge"
	FraudStatusDeny      = "deny"
)

// Payment represents one payment attempt against a booking. A booking may
// accumulate several attempts; the authoritative one is the latest settled
// record. Raw provider payloads are retained for reconciliation.
type Payment struct {
	ID                uuid.UUID         `json:"id" db:"id"`
	BookingID         uuid.UUID         `json:"booking_id" db:"booking_id"`
	Provider          string            `json:"provider" db:"provider"`
	OrderID           string            `json:"order_id" db:"order_id"`
	TransactionID     string            `json:"transaction_id" db:"transaction_id"`
	GrossAmount       int               `json:"gross_amount" db:"gross_amount"`
	TransactionStatus TransactionStatus `json:"transaction_status" db:"transaction_status"`
	FraudStatus       string            `json:"fraud_status" db:"fraud_status"`
	RawRequest        string            `json:"-" db:"raw_request"`
	RawResponse       string            `json:"-" db:"raw_response"`
	RawNotification   string            `json:"-" db:"raw_notification"`
	PaidAt            *time.Time        `json:"paid_at" db:"paid_at"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// CheckoutRequest initiates online payment for a pending booking
type CheckoutRequest struct {
	UserID    uuid.UUID `json:"-"`
	BookingID string    `json:"booking_id" validate:"required,uuid"`
}

// CheckoutResponse carries the provider redirect for the customer
type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
	GrossAmount int    `json:"gross_amount"`
}

// PaymentNotification is the provider webhook payload. Field names are part
// of the provider wire contract.
type PaymentNotification struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
}

// PaymentSettledEvent is published when a payment settles
type PaymentSettledEvent struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	BookingID   uuid.UUID `json:"booking_id"`
	OrderID     string    `json:"order_id"`
	GrossAmount int       `json:"gross_amount"`
	Timestamp   time.Time `json:"timestamp"`
}
