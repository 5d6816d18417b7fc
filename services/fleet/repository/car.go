package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/fleet"
)

// FleetRepo implements the fleet.FleetRepo interface on Postgres
type FleetRepo struct {
	db *sqlx.DB
}

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(db *sqlx.DB) *FleetRepo {
	return &FleetRepo{db: db}
}

const carColumns = `
	id, brand, model, year, category, transmission, fuel_type,
	seats, price_per_day, status, location_id, created_at, updated_at
`

// CreateCar inserts a new car
func (r *FleetRepo) CreateCar(ctx context.Context, car *models.Car) error {
	query := `
		INSERT INTO cars (
			id, brand, model, year, category, transmission, fuel_type,
			seats, price_per_day, status, location_id, created_at, updated_at
		) VALUES (
			:id, :brand, :model, :year, :category, :transmission, :fuel_type,
			:seats, :price_per_day, :status, :location_id, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, car); err != nil {
		return fmt.Errorf("failed to insert car: %w", err)
	}
	return nil
}

// GetCarByID retrieves a car by id
func (r *FleetRepo) GetCarByID(ctx context.Context, id string) (*models.Car, error) {
	query := fmt.Sprintf(`SELECT %s FROM cars WHERE id = $1`, carColumns)

	var car models.Car
	if err := r.db.GetContext(ctx, &car, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleet.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}
	return &car, nil
}

// ListCars retrieves cars matching the filter, newest first
func (r *FleetRepo) ListCars(ctx context.Context, filter models.CarFilter) ([]*models.Car, error) {
	query := fmt.Sprintf(`SELECT %s FROM cars WHERE 1=1`, carColumns)
	args := []interface{}{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Transmission != "" {
		args = append(args, filter.Transmission)
		query += fmt.Sprintf(" AND transmission = $%d", len(args))
	}
	if filter.LocationID != "" {
		args = append(args, filter.LocationID)
		query += fmt.Sprintf(" AND location_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	cars := []*models.Car{}
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

// UpdateCar updates a car's definition
func (r *FleetRepo) UpdateCar(ctx context.Context, car *models.Car) error {
	query := `
		UPDATE cars
		SET brand = :brand, model = :model, year = :year, category = :category,
			transmission = :transmission, fuel_type = :fuel_type, seats = :seats,
			price_per_day = :price_per_day, status = :status,
			location_id = :location_id, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, car)
	if err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fleet.ErrCarNotFound
	}
	return nil
}

// DeleteCar removes a car unless it still has pending or confirmed bookings
func (r *FleetRepo) DeleteCar(ctx context.Context, id string) error {
	var active int
	countQuery := `
		SELECT COUNT(*) FROM bookings
		WHERE car_id = $1 AND status IN ('pending', 'confirmed')
	`
	if err := r.db.GetContext(ctx, &active, countQuery, id); err != nil {
		return fmt.Errorf("failed to count active bookings: %w", err)
	}
	if active > 0 {
		return fleet.ErrCarHasBookings
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fleet.ErrCarNotFound
	}
	return nil
}
