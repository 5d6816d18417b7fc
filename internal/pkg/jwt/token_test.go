package jwt_test

import (
	"testing"

	"github.com/google/uuid"
	jwtpkg "github.com/sewamobil/sewamobil/internal/pkg/jwt"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "sewamobil",
	}

	userID := uuid.New()
	token, expiresAt, err := jwtpkg.GenerateToken(userID, "budi@example.com", models.RoleCustomer, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := jwtpkg.ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "budi@example.com", claims["email"])
	assert.Equal(t, models.RoleCustomer, claims["role"])
	assert.Equal(t, "sewamobil", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "secret-a", Expiration: 60, Issuer: "sewamobil"}

	token, _, err := jwtpkg.GenerateToken(uuid.New(), "budi@example.com", models.RoleAdmin, cfg)
	require.NoError(t, err)

	_, err = jwtpkg.ValidateToken(token, "secret-b")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := jwtpkg.ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
}
