package middleware

import (
	"net/http"
	"strings"

	"proplist-backend/pkg/auth"
	"proplist-backend/pkg/common"

	"go.uber.org/zap"
)

// Authenticator verifies bearer tokens and injects the caller identity into
// the request context. A missing header is reported as 401; a token that is
// present but fails verification is reported as 403.
type Authenticator struct {
	validator *auth.JWTValidator
	logger    *zap.Logger
}

// NewAuthenticator creates the auth middleware.
func NewAuthenticator(validator *auth.JWTValidator, logger *zap.Logger) *Authenticator {
	return &Authenticator{validator: validator, logger: logger}
}

// RequireAuth wraps a handler with token verification.
func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r)
		if !ok {
			common.RespondError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := a.validator.ValidateToken(token)
		if err != nil {
			a.logger.Debug("token rejected", zap.Error(err))
			common.RespondError(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
