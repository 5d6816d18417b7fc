package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/booking"
	bookingmocks "github.com/sewamobil/sewamobil/services/booking/mocks"
	"github.com/sewamobil/sewamobil/services/coupon"
	couponmocks "github.com/sewamobil/sewamobil/services/coupon/mocks"
	fleetmocks "github.com/sewamobil/sewamobil/services/fleet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	repo     *bookingmocks.MockBookingRepo
	fleetUC  *fleetmocks.MockFleetUC
	couponUC *couponmocks.MockCouponUC
	gateway  *bookingmocks.MockBookingGW
	uc       booking.BookingUC
}

func newBookingFixture(t *testing.T) (*bookingFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := &bookingFixture{
		repo:     bookingmocks.NewMockBookingRepo(ctrl),
		fleetUC:  fleetmocks.NewMockFleetUC(ctrl),
		couponUC: couponmocks.NewMockCouponUC(ctrl),
		gateway:  bookingmocks.NewMockBookingGW(ctrl),
	}
	f.uc = NewBookingUC(f.repo, f.fleetUC, f.couponUC, f.gateway, validator.New())
	return f, ctrl
}

func availableCar() *models.Car {
	return &models.Car{
		ID:          uuid.New(),
		Brand:       "Toyota",
		Model:       "Avanza",
		PricePerDay: 450000,
		Status:      models.CarStatusAvailable,
		LocationID:  uuid.New(),
	}
}

func checkoutRequest(carID uuid.UUID) *models.CreateBookingRequest {
	pickup := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &models.CreateBookingRequest{
		UserID:            uuid.New(),
		CarID:             carID.String(),
		PickupDate:        pickup,
		ReturnDate:        pickup.Add(48 * time.Hour),
		PickupLocationID:  uuid.New().String(),
		DropoffLocationID: uuid.New().String(),
		PaymentMethod:     "pay_at_location",
	}
}

func TestRentalDays(t *testing.T) {
	pickup := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ret  time.Time
		want int
	}{
		{"exactly 48 hours is two days", pickup.Add(48 * time.Hour), 2},
		{"49 hours rounds up to three days", pickup.Add(49 * time.Hour), 3},
		{"four hours is still one day", pickup.Add(4 * time.Hour), 1},
		{"23 hours is one day", pickup.Add(23 * time.Hour), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(pickup, tt.ret))
		})
	}
}

func TestCreateBooking_PricingWithPercentCoupon(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	car := availableCar()
	req := checkoutRequest(car.ID)
	req.CouponCode = "HEMAT10"

	couponID := uuid.New()
	f.fleetUC.EXPECT().GetCar(gomock.Any(), car.ID.String()).Return(car, nil)
	// 2 days x 450000 = 900000 subtotal, 10% off
	f.couponUC.EXPECT().ValidateCode(gomock.Any(), "HEMAT10", 900000).
		Return(&models.ValidateCouponResponse{
			Coupon:   &models.Coupon{ID: couponID, Code: "HEMAT10"},
			Discount: 90000,
		}, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.gateway.EXPECT().PublishBookingCreated(gomock.Any()).Return(nil)

	b, err := f.uc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Days)
	assert.Equal(t, 900000, b.BasePrice)
	assert.Equal(t, 90000, b.DiscountAmount)
	assert.Equal(t, 810000, b.TotalPrice)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	require.NotNil(t, b.CouponID)
	assert.Equal(t, couponID, *b.CouponID)
}

func TestCreateBooking_OptionsPricedPerDay(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	car := availableCar()
	req := checkoutRequest(car.ID)
	req.Options = []models.BookingOptionRequest{
		{OptionCode: "child_seat", Label: "Child seat", PricePerDay: 25000},
		{OptionCode: "gps", Label: "GPS unit", PricePerDay: 15000},
	}

	f.fleetUC.EXPECT().GetCar(gomock.Any(), car.ID.String()).Return(car, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.gateway.EXPECT().PublishBookingCreated(gomock.Any()).Return(nil)

	b, err := f.uc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	// (25000 + 15000) x 2 days
	assert.Equal(t, 80000, b.ExtrasTotal)
	assert.Equal(t, 980000, b.TotalPrice)
	require.Len(t, b.Options, 2)
	assert.Equal(t, 50000, b.Options[0].TotalPrice)
}

func TestCreateBooking_InvalidDateRange(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	car := availableCar()
	req := checkoutRequest(car.ID)
	req.ReturnDate = req.PickupDate.Add(-time.Hour)

	_, err := f.uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
}

func TestCreateBooking_CarInMaintenance(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	car := availableCar()
	car.Status = models.CarStatusMaintenance
	req := checkoutRequest(car.ID)

	f.fleetUC.EXPECT().GetCar(gomock.Any(), car.ID.String()).Return(car, nil)

	_, err := f.uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, booking.ErrCarUnavailable)
}

func TestCreateBooking_InvalidCouponRejectsCheckout(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	car := availableCar()
	req := checkoutRequest(car.ID)
	req.CouponCode = "EXPIRED"

	f.fleetUC.EXPECT().GetCar(gomock.Any(), car.ID.String()).Return(car, nil)
	f.couponUC.EXPECT().ValidateCode(gomock.Any(), "EXPIRED", 900000).
		Return(nil, coupon.ErrCouponInvalid)

	_, err := f.uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, coupon.ErrCouponInvalid)
}

func TestCreateBooking_OverlapFromRepo(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	car := availableCar()
	req := checkoutRequest(car.ID)

	f.fleetUC.EXPECT().GetCar(gomock.Any(), car.ID.String()).Return(car, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(booking.ErrCarUnavailable)

	_, err := f.uc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, booking.ErrCarUnavailable)
}

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		from, to models.BookingStatus
		want     bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusCompleted, models.BookingStatusPending, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TransitionAllowed(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestUpdateStatus_RejectsReopeningCompleted(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().GetByID(gomock.Any(), id.String()).
		Return(&models.Booking{ID: id, Status: models.BookingStatusCompleted}, nil)

	_, err := f.uc.UpdateStatus(context.Background(), id.String(), models.BookingStatusPending, "admin")
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestUpdateStatus_ConfirmPublishesEvent(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	b := &models.Booking{ID: id, Status: models.BookingStatusPending}
	f.repo.EXPECT().GetByID(gomock.Any(), id.String()).Return(b, nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), b, models.BookingStatusConfirmed).Return(nil)
	f.gateway.EXPECT().PublishBookingStatusChanged(gomock.Any()).
		DoAndReturn(func(e *models.BookingStatusChangedEvent) error {
			assert.Equal(t, models.BookingStatusPending, e.OldStatus)
			assert.Equal(t, models.BookingStatusConfirmed, e.NewStatus)
			return nil
		})

	updated, err := f.uc.UpdateStatus(context.Background(), id.String(), models.BookingStatusConfirmed, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
}

func TestCancelOwnBooking_WrongOwner(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().GetByID(gomock.Any(), id.String()).
		Return(&models.Booking{ID: id, UserID: uuid.New(), Status: models.BookingStatusPending}, nil)

	_, err := f.uc.CancelOwnBooking(context.Background(), id.String(), uuid.New())
	assert.ErrorIs(t, err, booking.ErrNotBookingOwner)
}

func TestCancelOwnBooking_Success(t *testing.T) {
	f, ctrl := newBookingFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	userID := uuid.New()
	b := &models.Booking{ID: id, UserID: userID, Status: models.BookingStatusPending}
	f.repo.EXPECT().GetByID(gomock.Any(), id.String()).Return(b, nil)
	f.repo.EXPECT().UpdateStatus(gomock.Any(), b, models.BookingStatusCancelled).Return(nil)
	f.gateway.EXPECT().PublishBookingStatusChanged(gomock.Any()).Return(nil)

	cancelled, err := f.uc.CancelOwnBooking(context.Background(), id.String(), userID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}
