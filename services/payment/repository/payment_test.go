package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/payment/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestApplyNotification_ReplayShortCircuits(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPaymentRepository(db)

	// ON CONFLICT DO NOTHING affects zero rows on a duplicate; nothing else
	// in the transaction runs
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_notifications")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	result, err := repo.ApplyNotification(context.Background(), &models.PaymentNotification{
		OrderID:           "SM-abc-1",
		TransactionStatus: "settlement",
	}, "{}")
	require.NoError(t, err)
	assert.True(t, result.Duplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyNotification_FailedApplyLeavesNoLedgerRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPaymentRepository(db)

	// the ledger insert succeeds but the payment lock fails; the rollback
	// takes the ledger row with it, so the provider's retry is not treated
	// as a duplicate
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_notifications")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	_, err := repo.ApplyNotification(context.Background(), &models.PaymentNotification{
		OrderID:           "SM-abc-1",
		TransactionStatus: "settlement",
	}, "{}")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func paymentRows(p *models.Payment) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "booking_id", "provider", "order_id", "transaction_id",
		"gross_amount", "transaction_status", "fraud_status", "raw_request",
		"raw_response", "raw_notification", "paid_at", "created_at", "updated_at",
	}).AddRow(
		p.ID, p.BookingID, p.Provider, p.OrderID, p.TransactionID,
		p.GrossAmount, p.TransactionStatus, p.FraudStatus, p.RawRequest,
		p.RawResponse, p.RawNotification, p.PaidAt, p.CreatedAt, p.UpdatedAt,
	)
}

func TestApplyNotification_SettlementConfirmsPendingBooking(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPaymentRepository(db)

	now := time.Now()
	p := &models.Payment{
		ID:                uuid.New(),
		BookingID:         uuid.New(),
		Provider:          "midtrans",
		OrderID:           "SM-abc-1",
		GrossAmount:       810000,
		TransactionStatus: models.TransactionStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_notifications")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(p.OrderID).
		WillReturnRows(paymentRows(p))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, coupon_id FROM bookings")).
		WithArgs(p.BookingID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "coupon_id"}).AddRow("pending", nil))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status")).
		WithArgs(models.BookingStatusConfirmed, p.BookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE cars SET status")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.ApplyNotification(context.Background(), &models.PaymentNotification{
		OrderID:           p.OrderID,
		TransactionID:     "mt-txn-1",
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "810000.00",
	}, "{}")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, result.BookingOld)
	assert.Equal(t, models.BookingStatusConfirmed, result.BookingNew)
	assert.Equal(t, models.TransactionStatusSettlement, result.Payment.TransactionStatus)
	require.NotNil(t, result.Payment.PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyNotification_ExpireReleasesCoupon(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPaymentRepository(db)

	now := time.Now()
	couponID := uuid.New()
	p := &models.Payment{
		ID:                uuid.New(),
		BookingID:         uuid.New(),
		Provider:          "midtrans",
		OrderID:           "SM-abc-2",
		GrossAmount:       810000,
		TransactionStatus: models.TransactionStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_notifications")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(p.OrderID).
		WillReturnRows(paymentRows(p))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, coupon_id FROM bookings")).
		WithArgs(p.BookingID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "coupon_id"}).AddRow("pending", couponID))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status")).
		WithArgs(models.BookingStatusCancelled, p.BookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE cars SET status")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE coupons SET used_count = used_count - 1")).
		WithArgs(&couponID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.ApplyNotification(context.Background(), &models.PaymentNotification{
		OrderID:           p.OrderID,
		TransactionStatus: "expire",
		StatusCode:        "407",
		GrossAmount:       "810000.00",
	}, "{}")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, result.BookingNew)
}

func TestApplyNotification_ConfirmedBookingUntouchedByExpire(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPaymentRepository(db)

	now := time.Now()
	p := &models.Payment{
		ID:                uuid.New(),
		BookingID:         uuid.New(),
		Provider:          "midtrans",
		OrderID:           "SM-abc-3",
		GrossAmount:       810000,
		TransactionStatus: models.TransactionStatusSettlement,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_notifications")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(p.OrderID).
		WillReturnRows(paymentRows(p))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, coupon_id FROM bookings")).
		WithArgs(p.BookingID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "coupon_id"}).AddRow("confirmed", nil))
	mock.ExpectCommit()

	result, err := repo.ApplyNotification(context.Background(), &models.PaymentNotification{
		OrderID:           p.OrderID,
		TransactionStatus: "expire",
		StatusCode:        "407",
		GrossAmount:       "810000.00",
	}, "{}")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, result.BookingOld)
	assert.Equal(t, models.BookingStatusConfirmed, result.BookingNew)
}

func TestApplyNotification_ChallengedCaptureLeavesBookingPending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPaymentRepository(db)

	now := time.Now()
	p := &models.Payment{
		ID:                uuid.New(),
		BookingID:         uuid.New(),
		Provider:          "midtrans",
		OrderID:           "SM-abc-4",
		GrossAmount:       810000,
		TransactionStatus: models.TransactionStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// the payment row records the capture, but the booking stays pending and
	// nothing is marked paid until the fraud check accepts
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_notifications")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(p.OrderID).
		WillReturnRows(paymentRows(p))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, coupon_id FROM bookings")).
		WithArgs(p.BookingID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "coupon_id"}).AddRow("pending", nil))
	mock.ExpectCommit()

	result, err := repo.ApplyNotification(context.Background(), &models.PaymentNotification{
		OrderID:           p.OrderID,
		TransactionID:     "mt-txn-4",
		TransactionStatus: "capture",
		StatusCode:        "200",
		GrossAmount:       "810000.00",
		FraudStatus:       models.FraudStatusChallenge,
	}, "{}")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, result.BookingOld)
	assert.Equal(t, models.BookingStatusPending, result.BookingNew)
	assert.Nil(t, result.Payment.PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyNotification_AcceptedCaptureConfirmsBooking(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPaymentRepository(db)

	now := time.Now()
	p := &models.Payment{
		ID:                uuid.New(),
		BookingID:         uuid.New(),
		Provider:          "midtrans",
		OrderID:           "SM-abc-5",
		GrossAmount:       810000,
		TransactionStatus: models.TransactionStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_notifications")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(p.OrderID).
		WillReturnRows(paymentRows(p))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, coupon_id FROM bookings")).
		WithArgs(p.BookingID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "coupon_id"}).AddRow("pending", nil))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status")).
		WithArgs(models.BookingStatusConfirmed, p.BookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE cars SET status")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.ApplyNotification(context.Background(), &models.PaymentNotification{
		OrderID:           p.OrderID,
		TransactionID:     "mt-txn-5",
		TransactionStatus: "capture",
		StatusCode:        "200",
		GrossAmount:       "810000.00",
		FraudStatus:       models.FraudStatusAccept,
	}, "{}")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, result.BookingNew)
	require.NotNil(t, result.Payment.PaidAt)
}
