package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/fleet"
	"github.com/sewamobil/sewamobil/services/fleet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCar() *models.Car {
	return &models.Car{
		ID:           uuid.New(),
		Brand:        "Toyota",
		Model:        "Avanza",
		Year:         2022,
		Category:     "mpv",
		Transmission: "manual",
		FuelType:     "petrol",
		Seats:        7,
		PricePerDay:  450000,
		Status:       models.CarStatusAvailable,
		LocationID:   uuid.New(),
	}
}

func sampleCarRequest(locationID string) *models.CarRequest {
	return &models.CarRequest{
		Brand:        "Toyota",
		Model:        "Avanza",
		Year:         2022,
		Category:     "mpv",
		Transmission: "manual",
		FuelType:     "petrol",
		Seats:        7,
		PricePerDay:  450000,
		LocationID:   locationID,
	}
}

func TestCreateCar_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	uc := NewFleetUC(mockRepo, nil, validator.New())

	locationID := uuid.New()
	mockRepo.EXPECT().GetLocationByID(gomock.Any(), locationID.String()).
		Return(&models.Location{ID: locationID}, nil)
	mockRepo.EXPECT().CreateCar(gomock.Any(), gomock.Any()).Return(nil)

	car, err := uc.CreateCar(context.Background(), sampleCarRequest(locationID.String()))
	require.NoError(t, err)
	assert.Equal(t, models.CarStatusAvailable, car.Status)
	assert.Equal(t, locationID, car.LocationID)
}

func TestCreateCar_UnknownLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	uc := NewFleetUC(mockRepo, nil, validator.New())

	locationID := uuid.New()
	mockRepo.EXPECT().GetLocationByID(gomock.Any(), locationID.String()).
		Return(nil, fleet.ErrLocationNotFound)

	_, err := uc.CreateCar(context.Background(), sampleCarRequest(locationID.String()))
	assert.ErrorIs(t, err, fleet.ErrLocationNotFound)
}

func TestCreateCar_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	uc := NewFleetUC(mockRepo, nil, validator.New())

	req := sampleCarRequest(uuid.New().String())
	req.Transmission = "hover"

	_, err := uc.CreateCar(context.Background(), req)
	assert.Error(t, err)
}

func TestGetCar_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockCache := mocks.NewMockCarCache(ctrl)
	uc := NewFleetUC(mockRepo, mockCache, validator.New())

	car := sampleCar()
	data, err := json.Marshal(car)
	require.NoError(t, err)

	mockCache.EXPECT().Get(gomock.Any(), "car:detail:"+car.ID.String()).
		Return(string(data), nil)

	got, err := uc.GetCar(context.Background(), car.ID.String())
	require.NoError(t, err)
	assert.Equal(t, car.ID, got.ID)
	assert.Equal(t, car.PricePerDay, got.PricePerDay)
}

func TestGetCar_CacheMissPopulatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockCache := mocks.NewMockCarCache(ctrl)
	uc := NewFleetUC(mockRepo, mockCache, validator.New())

	car := sampleCar()
	key := "car:detail:" + car.ID.String()

	mockCache.EXPECT().Get(gomock.Any(), key).Return("", assert.AnError)
	mockRepo.EXPECT().GetCarByID(gomock.Any(), car.ID.String()).Return(car, nil)
	mockCache.EXPECT().Set(gomock.Any(), key, gomock.Any(), 5*time.Minute).Return(nil)

	got, err := uc.GetCar(context.Background(), car.ID.String())
	require.NoError(t, err)
	assert.Equal(t, car.ID, got.ID)
}

func TestUpdateCar_InvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	mockCache := mocks.NewMockCarCache(ctrl)
	uc := NewFleetUC(mockRepo, mockCache, validator.New())

	car := sampleCar()
	req := sampleCarRequest(car.LocationID.String())
	req.PricePerDay = 500000

	mockRepo.EXPECT().GetCarByID(gomock.Any(), car.ID.String()).Return(car, nil)
	mockRepo.EXPECT().GetLocationByID(gomock.Any(), car.LocationID.String()).
		Return(&models.Location{ID: car.LocationID}, nil)
	mockRepo.EXPECT().UpdateCar(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Delete(gomock.Any(), "car:detail:"+car.ID.String()).Return(nil)

	updated, err := uc.UpdateCar(context.Background(), car.ID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, 500000, updated.PricePerDay)
}

func TestDeleteCar_WithActiveBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	uc := NewFleetUC(mockRepo, nil, validator.New())

	id := uuid.New().String()
	mockRepo.EXPECT().DeleteCar(gomock.Any(), id).Return(fleet.ErrCarHasBookings)

	err := uc.DeleteCar(context.Background(), id)
	assert.ErrorIs(t, err, fleet.ErrCarHasBookings)
}

func TestCreateLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFleetRepo(ctrl)
	uc := NewFleetUC(mockRepo, nil, validator.New())

	mockRepo.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Return(nil)

	location, err := uc.CreateLocation(context.Background(), &models.LocationRequest{
		Name:      "Bandara Soekarno-Hatta",
		Address:   "Jl. Raya Bandara",
		City:      "Tangerang",
		Latitude:  -6.1256,
		Longitude: 106.6559,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, location.ID)
	assert.Equal(t, "Tangerang", location.City)
}
