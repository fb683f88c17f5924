package services

import (
	"context"
	"testing"
	"time"

	"proplist-backend/pkg/auth"
	apperrors "proplist-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	generator, err := auth.NewJWTGenerator(auth.JWTConfig{
		SecretKey:  "test-secret",
		Issuer:     "test",
		ExpiryTime: time.Hour,
	})
	require.NoError(t, err)
	return NewAuthService(users, generator, zap.NewNop()), users
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the account with a hashed password", func(t *testing.T) {
		service, users := newAuthFixture(t)

		user, err := service.Register(ctx, RegisterInput{Email: "a@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", user.Password)
		assert.True(t, auth.CheckPassword(user.Password, "secret1"))
		assert.NotNil(t, users.users[user.ID.Hex()].Favorites)
	})

	t.Run("taken email reads as bad input", func(t *testing.T) {
		service, _ := newAuthFixture(t)

		_, err := service.Register(ctx, RegisterInput{Email: "a@example.com", Password: "secret1"})
		require.NoError(t, err)

		_, err = service.Register(ctx, RegisterInput{Email: "a@example.com", Password: "other12"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("malformed input is rejected", func(t *testing.T) {
		service, _ := newAuthFixture(t)

		_, err := service.Register(ctx, RegisterInput{Email: "not-an-email", Password: "secret1"})
		assert.True(t, apperrors.IsValidation(err))

		_, err = service.Register(ctx, RegisterInput{Email: "a@example.com", Password: "short"})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		service, _ := newAuthFixture(t)
		user, err := service.Register(ctx, RegisterInput{Email: "a@example.com", Password: "secret1"})
		require.NoError(t, err)

		token, err := service.Login(ctx, "a@example.com", "secret1")
		require.NoError(t, err)

		validator, err := auth.NewJWTValidator(auth.JWTConfig{SecretKey: "test-secret", Issuer: "test"})
		require.NoError(t, err)
		claims, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
		assert.Equal(t, "a@example.com", claims.Email)
	})

	t.Run("wrong password and unknown email both read as invalid credentials", func(t *testing.T) {
		service, _ := newAuthFixture(t)
		_, err := service.Register(ctx, RegisterInput{Email: "a@example.com", Password: "secret1"})
		require.NoError(t, err)

		_, err = service.Login(ctx, "a@example.com", "wrong-password")
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))

		_, err = service.Login(ctx, "nobody@example.com", "secret1")
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	})
}
