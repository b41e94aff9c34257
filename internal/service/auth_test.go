package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/testhelpers"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Iris", "iris@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	t.Run("register creates default preferences", func(t *testing.T) {
		var user models.User
		require.NoError(t, db.Where("email = ?", "iris@example.com").First(&user).Error)

		prefs, err := NewPreferenceService(db).Get(context.Background(), user.ID)
		require.NoError(t, err)
		assert.True(t, prefs.UseWeatherContext)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register("Other", "iris@example.com", "password456")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("login with correct password", func(t *testing.T) {
		token, err := svc.Login("iris@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, err := svc.Login("iris@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Iris", "iris@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "iris@example.com").First(&user).Error)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "iris@example.com", claims.Email)

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("token signed with different secret rejected", func(t *testing.T) {
		other := NewAuthService(db, "other-secret")
		otherToken, err := other.Login("iris@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.ValidateToken(otherToken)
		assert.Error(t, err)
	})
}
