package fleet

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// FleetRepo defines the interface for car and location data access
type FleetRepo interface {
	CreateCar(ctx context.Context, car *models.Car) error
	GetCarByID(ctx context.Context, id string) (*models.Car, error)
	ListCars(ctx context.Context, filter models.CarFilter) ([]*models.Car, error)
	UpdateCar(ctx context.Context, car *models.Car) error
	DeleteCar(ctx context.Context, id string) error

	CreateLocation(ctx context.Context, location *models.Location) error
	GetLocationByID(ctx context.Context, id string) (*models.Location, error)
	ListLocations(ctx context.Context) ([]*models.Location, error)
}
