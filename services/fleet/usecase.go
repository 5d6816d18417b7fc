package fleet

import (
	"context"
	"time"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// FleetUC defines the interface for car and location business logic
type FleetUC interface {
	CreateCar(ctx context.Context, req *models.CarRequest) (*models.Car, error)
	GetCar(ctx context.Context, id string) (*models.Car, error)
	ListCars(ctx context.Context, filter models.CarFilter) ([]*models.Car, error)
	UpdateCar(ctx context.Context, id string, req *models.CarRequest) (*models.Car, error)
	DeleteCar(ctx context.Context, id string) error

	CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.Location, error)
	ListLocations(ctx context.Context) ([]*models.Location, error)
}

// CarCache caches car detail lookups. Satisfied by database.RedisClient.
type CarCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
