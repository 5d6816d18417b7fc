package payment

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// SnapResult carries the provider transaction handle plus the raw payloads
// retained for reconciliation
type SnapResult struct {
	Token       string
	RedirectURL string
	RawRequest  string
	RawResponse string
}

// SnapGW creates transactions on the payment provider
type SnapGW interface {
	CreateTransaction(ctx context.Context, orderID string, grossAmount int, customerEmail string) (*SnapResult, error)
}

// SignatureVerifier checks the authenticity of a provider notification
type SignatureVerifier interface {
	Verify(n *models.PaymentNotification) error
}

// PaymentEventGW publishes payment domain events
type PaymentEventGW interface {
	PublishPaymentSettled(event *models.PaymentSettledEvent) error
}
