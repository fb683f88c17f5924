// Package ports defines the interfaces between the application layer and
// infrastructure. Repositories wrap the document store; Cache wraps the
// key-value store. Implementations live under infrastructure/.
package ports

import (
	"context"
	"time"

	"proplist-backend/domain"
)

// PropertyRepository is the document-store port for listings.
type PropertyRepository interface {
	// FindByID returns the listing with the given id, or a not-found error.
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	// FindLatestID returns the listing id with the highest numeric suffix,
	// using numeric (not lexicographic) ordering. Returns "" when the
	// collection is empty.
	FindLatestID(ctx context.Context) (string, error)
	Insert(ctx context.Context, property *domain.Property) error
	// InsertMany bulk-loads listings, used by the CSV importer.
	InsertMany(ctx context.Context, properties []domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id string) error
	// SearchByTitle matches the keyword case-insensitively as a substring of
	// the title.
	SearchByTitle(ctx context.Context, keyword string, limit int64) ([]domain.Property, error)
	// Filter applies a structured filter; tag and amenity terms match whole
	// words case-insensitively.
	Filter(ctx context.Context, filter domain.PropertyFilter, limit int64) ([]domain.Property, error)
}

// UserRepository is the document-store port for accounts. String ids are hex
// object ids; a malformed id behaves like a missing user.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateFavorites(ctx context.Context, id string, favorites []string) error
}

// RecommendationRepository is the document-store port for recommendations.
type RecommendationRepository interface {
	Exists(ctx context.Context, fromID, toID, propertyID string) (bool, error)
	Insert(ctx context.Context, rec *domain.Recommendation) error
	FindReceived(ctx context.Context, toID string) ([]domain.ReceivedRecommendation, error)
}

// Cache is the key-value store port. Get reports absence via the found flag;
// a missing key is not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
