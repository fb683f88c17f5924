package services

import (
	"context"

	"proplist-backend/application/caching"
	"proplist-backend/application/ports"
	apperrors "proplist-backend/pkg/errors"

	"go.uber.org/zap"
)

// FavoriteService manages the per-user favorites list.
type FavoriteService struct {
	users  ports.UserRepository
	cache  *caching.Accessor
	logger *zap.Logger
}

// NewFavoriteService creates a favorite service.
func NewFavoriteService(users ports.UserRepository, cache *caching.Accessor, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{
		users:  users,
		cache:  cache,
		logger: logger,
	}
}

// Add appends the listing ids not already favorited, preserving input order.
// An id is skipped once it is present, so duplicates within the input count
// once. Returns the number actually added; the favorites cache key is only
// invalidated when that number is positive.
func (s *FavoriteService) Add(ctx context.Context, userID string, propertyIDs []string) (int, error) {
	if len(propertyIDs) == 0 {
		return 0, apperrors.NewValidationError("propertyIds must be a non-empty array")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, id := range propertyIDs {
		if user.HasFavorite(id) {
			continue
		}
		user.Favorites = append(user.Favorites, id)
		added++
	}

	if added > 0 {
		if err := s.users.UpdateFavorites(ctx, userID, user.Favorites); err != nil {
			return 0, err
		}
		s.cache.Invalidate(ctx, caching.FavoritesKey(userID))
	}

	return added, nil
}

// List returns the user's favorites, cache-aside. A cached empty list is
// treated as a miss.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]string, error) {
	return caching.GetOrLoadList(ctx, s.cache, caching.FavoritesKey(userID), caching.DefaultTTL, nil,
		func(ctx context.Context) ([]string, error) {
			user, err := s.users.FindByID(ctx, userID)
			if err != nil {
				return nil, err
			}
			return user.Favorites, nil
		})
}

// Remove drops the given listing ids from the user's favorites. The list is
// persisted and the cache key invalidated only when it actually shrank, so a
// repeated removal is a no-op.
func (s *FavoriteService) Remove(ctx context.Context, userID string, propertyIDs []string) error {
	if len(propertyIDs) == 0 {
		return apperrors.NewValidationError("propertyIds must be a non-empty array")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	remaining := make([]string, 0, len(user.Favorites))
	for _, fav := range user.Favorites {
		if !containsID(propertyIDs, fav) {
			remaining = append(remaining, fav)
		}
	}

	if len(remaining) == len(user.Favorites) {
		return nil
	}

	if err := s.users.UpdateFavorites(ctx, userID, remaining); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, caching.FavoritesKey(userID))
	return nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
