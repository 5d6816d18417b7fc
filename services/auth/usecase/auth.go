package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/jwt"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// authUC implements the auth.AuthUC interface
type authUC struct {
	repo     auth.UserRepo
	jwtCfg   models.JWTConfig
	validate *validator.Validate
}

// NewAuthUC creates a new auth use case
func NewAuthUC(repo auth.UserRepo, jwtCfg models.JWTConfig, validate *validator.Validate) auth.AuthUC {
	return &authUC{
		repo:     repo,
		jwtCfg:   jwtCfg,
		validate: validate,
	}
}

// Register creates a new customer account
func (uc *authUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := uc.repo.GetByEmail(ctx, email); err == nil {
		return nil, auth.ErrEmailTaken
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         models.RoleCustomer,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", user.Email))

	return user, nil
}

// Login verifies credentials and issues a bearer token
func (uc *authUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, auth.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, user.Role, uc.jwtCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("user logged in", logger.String("user_id", user.ID.String()))

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Role:      user.Role,
	}, nil
}

// GetUser retrieves a user by id
func (uc *authUC) GetUser(ctx context.Context, id string) (*models.User, error) {
	return uc.repo.GetByID(ctx, id)
}
