package auth

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// UserRepo defines the interface for user data access
type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
