package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/auth"
	"github.com/sewamobil/sewamobil/services/booking"
	"github.com/sewamobil/sewamobil/services/payment"
)

// paymentUC implements the payment.PaymentUC interface
type paymentUC struct {
	repo      payment.PaymentRepo
	bookingUC booking.BookingUC
	authUC    auth.AuthUC
	snap      payment.SnapGW
	verifier  payment.SignatureVerifier
	events    payment.PaymentEventGW
	validate  *validator.Validate
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	repo payment.PaymentRepo,
	bookingUC booking.BookingUC,
	authUC auth.AuthUC,
	snap payment.SnapGW,
	verifier payment.SignatureVerifier,
	events payment.PaymentEventGW,
	validate *validator.Validate,
) payment.PaymentUC {
	return &paymentUC{
		repo:      repo,
		bookingUC: bookingUC,
		authUC:    authUC,
		snap:      snap,
		verifier:  verifier,
		events:    events,
		validate:  validate,
	}
}

// NewOrderID builds a provider order id unique per payment attempt
func NewOrderID(bookingID uuid.UUID, now time.Time) string {
	short := strings.ReplaceAll(bookingID.String(), "-", "")[:12]
	return fmt.Sprintf("SM-%s-%d", short, now.Unix())
}

// Checkout creates a provider transaction for a pending online booking. A
// provider failure leaves the booking pending so the customer can retry.
func (uc *paymentUC) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	b, err := uc.bookingUC.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != req.UserID {
		return nil, booking.ErrNotBookingOwner
	}
	if b.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is %s", payment.ErrBookingNotPayable, b.Status)
	}
	if b.PaymentMethod != models.PaymentMethodOnlineFull {
		return nil, fmt.Errorf("%w: payment method is %s", payment.ErrBookingNotPayable, b.PaymentMethod)
	}

	email := ""
	if user, err := uc.authUC.GetUser(ctx, b.UserID.String()); err == nil {
		email = user.Email
	}

	now := time.Now().UTC()
	orderID := NewOrderID(b.ID, now)

	snap, err := uc.snap.CreateTransaction(ctx, orderID, b.TotalPrice, email)
	if err != nil {
		logger.Error("snap transaction failed",
			logger.String("booking_id", b.ID.String()),
			logger.String("order_id", orderID),
			logger.ErrorField(err))
		return nil, err
	}

	p := &models.Payment{
		ID:                uuid.New(),
		BookingID:         b.ID,
		Provider:          "midtrans",
		OrderID:           orderID,
		GrossAmount:       b.TotalPrice,
		TransactionStatus: models.TransactionStatusPending,
		RawRequest:        snap.RawRequest,
		RawResponse:       snap.RawResponse,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("payment checkout created",
		logger.String("booking_id", b.ID.String()),
		logger.String("order_id", orderID),
		logger.Int("gross_amount", b.TotalPrice))

	return &models.CheckoutResponse{
		OrderID:     orderID,
		Token:       snap.Token,
		RedirectURL: snap.RedirectURL,
		GrossAmount: b.TotalPrice,
	}, nil
}

// HandleNotification verifies and applies a provider webhook. The repository
// records the notification and applies its side effects in one transaction,
// so a replay of an already-applied (order_id, transaction_status) pair is a
// no-op while a retry after a failed apply goes through in full.
func (uc *paymentUC) HandleNotification(ctx context.Context, n *models.PaymentNotification) error {
	if err := uc.verifier.Verify(n); err != nil {
		logger.Warn("rejected payment notification",
			logger.String("order_id", n.OrderID),
			logger.String("transaction_status", n.TransactionStatus))
		return err
	}

	raw, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	result, err := uc.repo.ApplyNotification(ctx, n, string(raw))
	if err != nil {
		return err
	}
	if result.Duplicate {
		logger.Info("duplicate payment notification ignored",
			logger.String("order_id", n.OrderID),
			logger.String("transaction_status", n.TransactionStatus))
		return nil
	}

	logger.Info("payment notification applied",
		logger.String("order_id", n.OrderID),
		logger.String("transaction_status", n.TransactionStatus),
		logger.String("booking_old", string(result.BookingOld)),
		logger.String("booking_new", string(result.BookingNew)))

	p := result.Payment
	settled := p.TransactionStatus == models.TransactionStatusSettlement ||
		(p.TransactionStatus == models.TransactionStatusCapture && p.FraudStatus == models.FraudStatusAccept)
	if settled && uc.events != nil {
		event := &models.PaymentSettledEvent{
			PaymentID:   p.ID,
			BookingID:   p.BookingID,
			OrderID:     p.OrderID,
			GrossAmount: p.GrossAmount,
			Timestamp:   time.Now().UTC(),
		}
		if err := uc.events.PublishPaymentSettled(event); err != nil {
			logger.Warn("failed to publish payment settled event",
				logger.String("order_id", p.OrderID),
				logger.ErrorField(err))
		}
	}

	return nil
}

// ListByBooking lists payment attempts for a booking. Customers can only see
// their own bookings' payments; back-office roles can see any.
func (uc *paymentUC) ListByBooking(ctx context.Context, bookingID string, requesterID uuid.UUID, requesterRole string) ([]*models.Payment, error) {
	b, err := uc.bookingUC.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	elevated := requesterRole == models.RoleAdmin ||
		requesterRole == models.RoleStaff ||
		requesterRole == models.RolePartner
	if b.UserID != requesterID && !elevated {
		return nil, booking.ErrNotBookingOwner
	}

	return uc.repo.ListByBookingID(ctx, bookingID)
}
