package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"proplist-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (*Authenticator, *auth.JWTGenerator) {
	t.Helper()
	config := auth.JWTConfig{SecretKey: "test-secret", Issuer: "test", ExpiryTime: time.Hour}
	generator, err := auth.NewJWTGenerator(config)
	require.NoError(t, err)
	validator, err := auth.NewJWTValidator(config)
	require.NoError(t, err)
	return NewAuthenticator(validator, zap.NewNop()), generator
}

func TestRequireAuth(t *testing.T) {
	authenticator, generator := newAuthFixture(t)

	var seenUser *auth.UserContext
	handler := authenticator.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.GetUserFromContext(r.Context())
		require.NoError(t, err)
		seenUser = user
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing header is unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token passes and injects the caller", func(t *testing.T) {
		token, err := generator.GenerateToken("user-123", "a@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seenUser)
		assert.Equal(t, "user-123", seenUser.UserID)
		assert.Equal(t, "a@example.com", seenUser.Email)
	})
}
