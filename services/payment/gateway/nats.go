package gateway

import (
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	natspkg "github.com/sewamobil/sewamobil/internal/pkg/nats"
)

// SubjectPaymentSettled is the NATS subject for settled payments
const SubjectPaymentSettled = "payments.settled"

// PaymentEventGW implements the payment.PaymentEventGW interface over NATS
type PaymentEventGW struct {
	nats *natspkg.Client
}

// NewPaymentEventGW creates a new payment event gateway
func NewPaymentEventGW(natsClient *natspkg.Client) *PaymentEventGW {
	return &PaymentEventGW{nats: natsClient}
}

// PublishPaymentSettled publishes a payment settled event
func (g *PaymentEventGW) PublishPaymentSettled(event *models.PaymentSettledEvent) error {
	return g.nats.PublishJSON(SubjectPaymentSettled, event)
}
