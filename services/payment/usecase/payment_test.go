package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	authmocks "github.com/sewamobil/sewamobil/services/auth/mocks"
	"github.com/sewamobil/sewamobil/services/booking"
	bookingmocks "github.com/sewamobil/sewamobil/services/booking/mocks"
	"github.com/sewamobil/sewamobil/services/payment"
	paymentmocks "github.com/sewamobil/sewamobil/services/payment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	repo      *paymentmocks.MockPaymentRepo
	bookingUC *bookingmocks.MockBookingUC
	authUC    *authmocks.MockAuthUC
	snap      *paymentmocks.MockSnapGW
	verifier  *paymentmocks.MockSignatureVerifier
	events    *paymentmocks.MockPaymentEventGW
	uc        payment.PaymentUC
}

func newPaymentFixture(t *testing.T) (*paymentFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := &paymentFixture{
		repo:      paymentmocks.NewMockPaymentRepo(ctrl),
		bookingUC: bookingmocks.NewMockBookingUC(ctrl),
		authUC:    authmocks.NewMockAuthUC(ctrl),
		snap:      paymentmocks.NewMockSnapGW(ctrl),
		verifier:  paymentmocks.NewMockSignatureVerifier(ctrl),
		events:    paymentmocks.NewMockPaymentEventGW(ctrl),
	}
	f.uc = NewPaymentUC(f.repo, f.bookingUC, f.authUC, f.snap, f.verifier, f.events, validator.New())
	return f, ctrl
}

func payableBooking(userID uuid.UUID) *models.Booking {
	return &models.Booking{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        models.BookingStatusPending,
		PaymentMethod: models.PaymentMethodOnlineFull,
		TotalPrice:    810000,
	}
}

func TestCheckout_Success(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	userID := uuid.New()
	b := payableBooking(userID)

	f.bookingUC.EXPECT().GetBooking(gomock.Any(), b.ID.String()).Return(b, nil)
	f.authUC.EXPECT().GetUser(gomock.Any(), userID.String()).
		Return(&models.User{ID: userID, Email: "budi@example.com"}, nil)
	f.snap.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), 810000, "budi@example.com").
		Return(&payment.SnapResult{
			Token:       "snap-token",
			RedirectURL: "https://app.sandbox.midtrans.com/snap/v3/redirection/snap-token",
			RawRequest:  "{}",
			RawResponse: "{}",
		}, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			assert.Equal(t, b.ID, p.BookingID)
			assert.Equal(t, "midtrans", p.Provider)
			assert.Equal(t, models.TransactionStatusPending, p.TransactionStatus)
			assert.Equal(t, 810000, p.GrossAmount)
			return nil
		})

	resp, err := f.uc.Checkout(context.Background(), &models.CheckoutRequest{
		UserID:    userID,
		BookingID: b.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "snap-token", resp.Token)
	assert.Equal(t, 810000, resp.GrossAmount)
	assert.NotEmpty(t, resp.OrderID)
}

func TestCheckout_WrongOwner(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	b := payableBooking(uuid.New())
	f.bookingUC.EXPECT().GetBooking(gomock.Any(), b.ID.String()).Return(b, nil)

	_, err := f.uc.Checkout(context.Background(), &models.CheckoutRequest{
		UserID:    uuid.New(),
		BookingID: b.ID.String(),
	})
	assert.ErrorIs(t, err, booking.ErrNotBookingOwner)
}

func TestCheckout_NotPending(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	userID := uuid.New()
	b := payableBooking(userID)
	b.Status = models.BookingStatusConfirmed
	f.bookingUC.EXPECT().GetBooking(gomock.Any(), b.ID.String()).Return(b, nil)

	_, err := f.uc.Checkout(context.Background(), &models.CheckoutRequest{
		UserID:    userID,
		BookingID: b.ID.String(),
	})
	assert.ErrorIs(t, err, payment.ErrBookingNotPayable)
}

func TestCheckout_PayAtLocationBooking(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	userID := uuid.New()
	b := payableBooking(userID)
	b.PaymentMethod = models.PaymentMethodPayAtLocation
	f.bookingUC.EXPECT().GetBooking(gomock.Any(), b.ID.String()).Return(b, nil)

	_, err := f.uc.Checkout(context.Background(), &models.CheckoutRequest{
		UserID:    userID,
		BookingID: b.ID.String(),
	})
	assert.ErrorIs(t, err, payment.ErrBookingNotPayable)
}

func TestCheckout_ProviderFailureLeavesBookingPending(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	userID := uuid.New()
	b := payableBooking(userID)

	f.bookingUC.EXPECT().GetBooking(gomock.Any(), b.ID.String()).Return(b, nil)
	f.authUC.EXPECT().GetUser(gomock.Any(), userID.String()).
		Return(&models.User{ID: userID, Email: "budi@example.com"}, nil)
	f.snap.EXPECT().CreateTransaction(gomock.Any(), gomock.Any(), 810000, "budi@example.com").
		Return(nil, payment.ErrPaymentProvider)

	// no payment row is written when the provider call fails
	_, err := f.uc.Checkout(context.Background(), &models.CheckoutRequest{
		UserID:    userID,
		BookingID: b.ID.String(),
	})
	assert.ErrorIs(t, err, payment.ErrPaymentProvider)
}

func settlementNotification() *models.PaymentNotification {
	return &models.PaymentNotification{
		OrderID:           "SM-abc123-1700000000",
		TransactionID:     "mt-txn-1",
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "810000.00",
		SignatureKey:      "sig",
	}
}

func TestHandleNotification_BadSignature(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	n := settlementNotification()
	f.verifier.EXPECT().Verify(n).Return(payment.ErrWebhookVerification)

	err := f.uc.HandleNotification(context.Background(), n)
	assert.ErrorIs(t, err, payment.ErrWebhookVerification)
}

func TestHandleNotification_SettlementConfirmsBooking(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	n := settlementNotification()
	paid := time.Now().UTC()
	result := &payment.NotificationResult{
		Payment: &models.Payment{
			ID:                uuid.New(),
			BookingID:         uuid.New(),
			OrderID:           n.OrderID,
			GrossAmount:       810000,
			TransactionStatus: models.TransactionStatusSettlement,
			PaidAt:            &paid,
		},
		BookingOld: models.BookingStatusPending,
		BookingNew: models.BookingStatusConfirmed,
	}

	f.verifier.EXPECT().Verify(n).Return(nil)
	f.repo.EXPECT().ApplyNotification(gomock.Any(), n, gomock.Any()).Return(result, nil)
	f.events.EXPECT().PublishPaymentSettled(gomock.Any()).
		DoAndReturn(func(e *models.PaymentSettledEvent) error {
			assert.Equal(t, n.OrderID, e.OrderID)
			assert.Equal(t, 810000, e.GrossAmount)
			return nil
		})

	err := f.uc.HandleNotification(context.Background(), n)
	assert.NoError(t, err)
}

func TestHandleNotification_ReplayIsNoOp(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	n := settlementNotification()
	f.verifier.EXPECT().Verify(n).Return(nil)
	// already in the ledger: nothing is applied, nothing is published
	f.repo.EXPECT().ApplyNotification(gomock.Any(), n, gomock.Any()).
		Return(&payment.NotificationResult{Duplicate: true}, nil)

	err := f.uc.HandleNotification(context.Background(), n)
	assert.NoError(t, err)
}

func TestHandleNotification_RetryAfterFailedApplyGoesThrough(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	n := settlementNotification()
	paid := time.Now().UTC()
	result := &payment.NotificationResult{
		Payment: &models.Payment{
			ID:                uuid.New(),
			BookingID:         uuid.New(),
			OrderID:           n.OrderID,
			GrossAmount:       810000,
			TransactionStatus: models.TransactionStatusSettlement,
			PaidAt:            &paid,
		},
		BookingOld: models.BookingStatusPending,
		BookingNew: models.BookingStatusConfirmed,
	}

	// first delivery dies mid-apply; nothing committed, so the provider's
	// retry must not be mistaken for a duplicate
	f.verifier.EXPECT().Verify(n).Return(nil).Times(2)
	gomock.InOrder(
		f.repo.EXPECT().ApplyNotification(gomock.Any(), n, gomock.Any()).
			Return(nil, errors.New("deadlock detected")),
		f.repo.EXPECT().ApplyNotification(gomock.Any(), n, gomock.Any()).
			Return(result, nil),
	)
	f.events.EXPECT().PublishPaymentSettled(gomock.Any()).Return(nil)

	err := f.uc.HandleNotification(context.Background(), n)
	require.Error(t, err)

	err = f.uc.HandleNotification(context.Background(), n)
	assert.NoError(t, err)
}

func TestHandleNotification_ChallengedCaptureDoesNotPublishSettled(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	n := settlementNotification()
	n.TransactionStatus = "capture"
	n.FraudStatus = models.FraudStatusChallenge
	result := &payment.NotificationResult{
		Payment: &models.Payment{
			ID:                uuid.New(),
			BookingID:         uuid.New(),
			OrderID:           n.OrderID,
			GrossAmount:       810000,
			TransactionStatus: models.TransactionStatusCapture,
			FraudStatus:       models.FraudStatusChallenge,
		},
		BookingOld: models.BookingStatusPending,
		BookingNew: models.BookingStatusPending,
	}

	f.verifier.EXPECT().Verify(n).Return(nil)
	f.repo.EXPECT().ApplyNotification(gomock.Any(), n, gomock.Any()).Return(result, nil)
	// no PublishPaymentSettled expectation: a challenged capture is not money

	err := f.uc.HandleNotification(context.Background(), n)
	assert.NoError(t, err)
}

func TestHandleNotification_ExpireDoesNotPublishSettled(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	n := settlementNotification()
	n.TransactionStatus = "expire"
	result := &payment.NotificationResult{
		Payment: &models.Payment{
			ID:                uuid.New(),
			BookingID:         uuid.New(),
			OrderID:           n.OrderID,
			TransactionStatus: models.TransactionStatusExpire,
		},
		BookingOld: models.BookingStatusPending,
		BookingNew: models.BookingStatusCancelled,
	}

	f.verifier.EXPECT().Verify(n).Return(nil)
	f.repo.EXPECT().ApplyNotification(gomock.Any(), n, gomock.Any()).Return(result, nil)

	err := f.uc.HandleNotification(context.Background(), n)
	assert.NoError(t, err)
}

func TestListByBooking_OwnerSeesOwnPayments(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	userID := uuid.New()
	b := payableBooking(userID)
	f.bookingUC.EXPECT().GetBooking(gomock.Any(), b.ID.String()).Return(b, nil)
	f.repo.EXPECT().ListByBookingID(gomock.Any(), b.ID.String()).
		Return([]*models.Payment{{BookingID: b.ID}}, nil)

	payments, err := f.uc.ListByBooking(context.Background(), b.ID.String(), userID, models.RoleCustomer)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestListByBooking_OtherCustomerForbidden(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	b := payableBooking(uuid.New())
	f.bookingUC.EXPECT().GetBooking(gomock.Any(), b.ID.String()).Return(b, nil)

	_, err := f.uc.ListByBooking(context.Background(), b.ID.String(), uuid.New(), models.RoleCustomer)
	assert.ErrorIs(t, err, booking.ErrNotBookingOwner)
}

func TestListByBooking_AdminSeesAny(t *testing.T) {
	f, ctrl := newPaymentFixture(t)
	defer ctrl.Finish()

	b := payableBooking(uuid.New())
	f.bookingUC.EXPECT().GetBooking(gomock.Any(), b.ID.String()).Return(b, nil)
	f.repo.EXPECT().ListByBookingID(gomock.Any(), b.ID.String()).
		Return([]*models.Payment{}, nil)

	_, err := f.uc.ListByBooking(context.Background(), b.ID.String(), uuid.New(), models.RoleAdmin)
	assert.NoError(t, err)
}

func TestNewOrderID_UniquePerAttempt(t *testing.T) {
	id := uuid.New()
	first := NewOrderID(id, time.Unix(1700000000, 0))
	second := NewOrderID(id, time.Unix(1700000001, 0))
	assert.NotEqual(t, first, second)
	assert.Contains(t, first, "SM-")
}
