package models

import (
	"time"

	"github.com/google/uuid"
)

// CarStatus represents the availability state of a car
type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusRented      CarStatus = "rented"
	CarStatusMaintenance CarStatus = "maintenance"
)

// Car represents a rentable vehicle. PricePerDay is in rupiah.
type Car struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Brand        string    `json:"brand" db:"brand"`
	Model        string    `json:"model" db:"model"`
	Year         int       `json:"year" db:"year"`
	Category     string    `json:"category" db:"category"`
	Transmission string    `json:"transmission" db:"transmission"`
	FuelType     string    `json:"fuel_type" db:"fuel_type"`
	Seats        int       `json:"seats" db:"seats"`
	PricePerDay  int       `json:"price_per_day" db:"price_per_day"`
	Status       CarStatus `json:"status" db:"status"`
	LocationID   uuid.UUID `json:"location_id" db:"location_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CarRequest is the payload for creating or updating a car
type CarRequest struct {
	Brand        string `json:"brand" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Year         int    `json:"year" validate:"required,min=1990"`
	Category     string `json:"category" validate:"required"`
	Transmission string `json:"transmission" validate:"required,oneof=manual automatic"`
	FuelType     string `json:"fuel_type" validate:"required"`
	Seats        int    `json:"seats" validate:"required,min=2,max=16"`
	PricePerDay  int    `json:"price_per_day" validate:"required,gt=0"`
	Status       string `json:"status" validate:"omitempty,oneof=available rented maintenance"`
	LocationID   string `json:"location_id" validate:"required,uuid"`
}

// CarFilter narrows car listings
type CarFilter struct {
	Category     string
	Transmission string
	LocationID   string
	Status       string
}
