package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/auth"
	"github.com/sewamobil/sewamobil/services/auth/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "sewamobil-test",
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(mockRepo, testJWTConfig(), validator.New())

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "budi@example.com").
		Return(nil, auth.ErrUserNotFound)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, models.RoleCustomer, u.Role)
			assert.True(t, u.IsActive)
			assert.NotEqual(t, "rahasia123", u.PasswordHash)
			return nil
		})

	user, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "Budi@Example.com",
		Password: "rahasia123",
		FullName: "Budi Santoso",
		Phone:    "+6281234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", user.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(mockRepo, testJWTConfig(), validator.New())

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{ID: uuid.New()}, nil)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "budi@example.com",
		Password: "rahasia123",
		FullName: "Budi Santoso",
		Phone:    "+6281234567890",
	})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestRegister_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(mockRepo, testJWTConfig(), validator.New())

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "budi@example.com",
		Password: "short",
		FullName: "Budi Santoso",
		Phone:    "+6281234567890",
	})
	assert.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(mockRepo, testJWTConfig(), validator.New())

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "budi@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	mockRepo.EXPECT().GetByEmail(gomock.Any(), "budi@example.com").Return(user, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "budi@example.com",
		Password: "rahasia123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(mockRepo, testJWTConfig(), validator.New())

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{
			ID:           uuid.New(),
			Email:        "budi@example.com",
			PasswordHash: string(hash),
			IsActive:     true,
		}, nil)

	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Email:    "budi@example.com",
		Password: "salah-total",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(mockRepo, testJWTConfig(), validator.New())

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, auth.ErrUserNotFound)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewAuthUC(mockRepo, testJWTConfig(), validator.New())

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "budi@example.com").
		Return(&models.User{ID: uuid.New(), IsActive: false}, nil)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "budi@example.com",
		Password: "rahasia123",
	})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}
