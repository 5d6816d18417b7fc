package auth

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// AuthUC defines the interface for authentication business logic
type AuthUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}
