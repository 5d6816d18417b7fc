package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/fleet"
)

const locationColumns = `id, name, address, city, latitude, longitude, created_at`

// CreateLocation inserts a new location
func (r *FleetRepo) CreateLocation(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (id, name, address, city, latitude, longitude, created_at)
		VALUES (:id, :name, :address, :city, :latitude, :longitude, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, location); err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}
	return nil
}

// GetLocationByID retrieves a location by id
func (r *FleetRepo) GetLocationByID(ctx context.Context, id string) (*models.Location, error) {
	query := fmt.Sprintf(`SELECT %s FROM locations WHERE id = $1`, locationColumns)

	var location models.Location
	if err := r.db.GetContext(ctx, &location, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleet.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &location, nil
}

// ListLocations retrieves all locations ordered by city then name
func (r *FleetRepo) ListLocations(ctx context.Context) ([]*models.Location, error) {
	query := fmt.Sprintf(`SELECT %s FROM locations ORDER BY city, name`, locationColumns)

	locations := []*models.Location{}
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}
