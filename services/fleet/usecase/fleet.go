package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/fleet"
)

const (
	carCachePrefix = "car:detail:"
	carCacheTTL    = 5 * time.Minute
)

// fleetUC implements the fleet.FleetUC interface
type fleetUC struct {
	repo     fleet.FleetRepo
	cache    fleet.CarCache
	validate *validator.Validate
}

// NewFleetUC creates a new fleet use case. cache may be nil, in which case
// car detail lookups always hit the database.
func NewFleetUC(repo fleet.FleetRepo, cache fleet.CarCache, validate *validator.Validate) fleet.FleetUC {
	return &fleetUC{
		repo:     repo,
		cache:    cache,
		validate: validate,
	}
}

// CreateCar creates a new car from an admin request
func (uc *fleetUC) CreateCar(ctx context.Context, req *models.CarRequest) (*models.Car, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("validation error: invalid location_id: %w", err)
	}
	if _, err := uc.repo.GetLocationByID(ctx, req.LocationID); err != nil {
		return nil, err
	}

	status := models.CarStatusAvailable
	if req.Status != "" {
		status = models.CarStatus(req.Status)
	}

	now := time.Now().UTC()
	car := &models.Car{
		ID:           uuid.New(),
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Category:     req.Category,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Seats:        req.Seats,
		PricePerDay:  req.PricePerDay,
		Status:       status,
		LocationID:   locationID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.CreateCar(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	logger.Info("car created",
		logger.String("car_id", car.ID.String()),
		logger.String("brand", car.Brand),
		logger.String("model", car.Model))

	return car, nil
}

// GetCar retrieves a car by id, serving from cache when possible
func (uc *fleetUC) GetCar(ctx context.Context, id string) (*models.Car, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, carCachePrefix+id); err == nil && cached != "" {
			var car models.Car
			if err := json.Unmarshal([]byte(cached), &car); err == nil {
				return &car, nil
			}
		}
	}

	car, err := uc.repo.GetCarByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(car); err == nil {
			if err := uc.cache.Set(ctx, carCachePrefix+id, data, carCacheTTL); err != nil {
				logger.Warn("failed to cache car detail",
					logger.String("car_id", id),
					logger.ErrorField(err))
			}
		}
	}

	return car, nil
}

// ListCars lists cars matching the filter
func (uc *fleetUC) ListCars(ctx context.Context, filter models.CarFilter) ([]*models.Car, error) {
	return uc.repo.ListCars(ctx, filter)
}

// UpdateCar updates an existing car and invalidates its cached detail
func (uc *fleetUC) UpdateCar(ctx context.Context, id string, req *models.CarRequest) (*models.Car, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	car, err := uc.repo.GetCarByID(ctx, id)
	if err != nil {
		return nil, err
	}

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("validation error: invalid location_id: %w", err)
	}
	if _, err := uc.repo.GetLocationByID(ctx, req.LocationID); err != nil {
		return nil, err
	}

	car.Brand = req.Brand
	car.Model = req.Model
	car.Year = req.Year
	car.Category = req.Category
	car.Transmission = req.Transmission
	car.FuelType = req.FuelType
	car.Seats = req.Seats
	car.PricePerDay = req.PricePerDay
	car.LocationID = locationID
	if req.Status != "" {
		car.Status = models.CarStatus(req.Status)
	}
	car.UpdatedAt = time.Now().UTC()

	if err := uc.repo.UpdateCar(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to update car: %w", err)
	}

	uc.invalidateCar(ctx, id)

	return car, nil
}

// DeleteCar removes a car and invalidates its cached detail
func (uc *fleetUC) DeleteCar(ctx context.Context, id string) error {
	if err := uc.repo.DeleteCar(ctx, id); err != nil {
		return err
	}

	uc.invalidateCar(ctx, id)

	logger.Info("car deleted", logger.String("car_id", id))
	return nil
}

func (uc *fleetUC) invalidateCar(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, carCachePrefix+id); err != nil {
		logger.Warn("failed to invalidate car cache",
			logger.String("car_id", id),
			logger.ErrorField(err))
	}
}

// CreateLocation creates a new pickup/dropoff location
func (uc *fleetUC) CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.Location, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	location := &models.Location{
		ID:        uuid.New(),
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	logger.Info("location created",
		logger.String("location_id", location.ID.String()),
		logger.String("city", location.City))

	return location, nil
}

// ListLocations lists all locations
func (uc *fleetUC) ListLocations(ctx context.Context) ([]*models.Location, error) {
	return uc.repo.ListLocations(ctx)
}
