package services

import (
	"context"

	"proplist-backend/application/ports"
	"proplist-backend/domain"
	"proplist-backend/pkg/auth"
	apperrors "proplist-backend/pkg/errors"
	"proplist-backend/pkg/utils"

	"go.uber.org/zap"
)

// RegisterInput carries a registration request.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthService handles registration and login.
type AuthService struct {
	users     ports.UserRepository
	generator *auth.JWTGenerator
	logger    *zap.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(users ports.UserRepository, generator *auth.JWTGenerator, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		generator: generator,
		logger:    logger,
	}
}

// Register creates an account with a hashed password. A taken email is
// reported as bad input, indistinguishable from other invalid registrations.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewValidationError("user already exists or invalid data")
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password").WithCause(err)
	}

	user := &domain.User{
		Email:     input.Email,
		Password:  hash,
		Favorites: []string{},
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("userID", user.ID.Hex()))
	return user, nil
}

// Login verifies the credentials and issues a token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NewUnauthorizedError("invalid credentials")
		}
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.generator.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return "", apperrors.NewInternalError("failed to issue token").WithCause(err)
	}
	return token, nil
}
