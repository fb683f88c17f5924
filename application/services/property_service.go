package services

import (
	"context"
	"strings"
	"time"

	"proplist-backend/application/caching"
	"proplist-backend/application/ports"
	"proplist-backend/domain"
	apperrors "proplist-backend/pkg/errors"
	"proplist-backend/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// listingQueryLimit caps search and filter result sets.
const listingQueryLimit = 100

// CreatePropertyInput carries the fields of a new listing.
type CreatePropertyInput struct {
	Title         string    `json:"title" validate:"required"`
	Type          string    `json:"type" validate:"required"`
	Price         float64   `json:"price" validate:"required,gte=0"`
	State         string    `json:"state" validate:"required"`
	City          string    `json:"city" validate:"required"`
	AreaSqFt      float64   `json:"areaSqFt" validate:"required,gte=0"`
	Bedrooms      int       `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int       `json:"bathrooms" validate:"gte=0"`
	Amenities     []string  `json:"amenities"`
	Furnished     string    `json:"furnished" validate:"required"`
	AvailableFrom time.Time `json:"availableFrom" validate:"required"`
	ListedBy      string    `json:"listedBy" validate:"required"`
	Tags          string    `json:"tags"`
	ColorTheme    string    `json:"colorTheme"`
	Rating        float64   `json:"rating" validate:"gte=0,max=5"`
	IsVerified    bool      `json:"isVerified"`
	ListingType   string    `json:"listingType"`
}

// PropertyService implements listing reads through the cache-aside accessor
// and listing mutations with their invalidation obligations.
type PropertyService struct {
	properties ports.PropertyRepository
	cache      *caching.Accessor
	logger     *zap.Logger
}

// NewPropertyService creates a property service.
func NewPropertyService(properties ports.PropertyRepository, cache *caching.Accessor, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		properties: properties,
		cache:      cache,
		logger:     logger,
	}
}

// Create persists a new listing owned by the caller. The listing id is
// assigned server-side from the current numeric maximum. The fresh entity is
// written through to its cache key and the aggregate tombstone is invalidated.
func (s *PropertyService) Create(ctx context.Context, userID string, input CreatePropertyInput) (*domain.Property, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.NewForbiddenError("invalid caller identity")
	}

	latest, err := s.properties.FindLatestID(ctx)
	if err != nil {
		return nil, err
	}
	id := domain.NextPropertyID(latest)

	property := &domain.Property{
		ID:            id,
		Title:         input.Title,
		Type:          input.Type,
		Price:         input.Price,
		State:         input.State,
		City:          input.City,
		AreaSqFt:      input.AreaSqFt,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		Amenities:     input.Amenities,
		Furnished:     input.Furnished,
		AvailableFrom: input.AvailableFrom,
		ListedBy:      input.ListedBy,
		Tags:          input.Tags,
		ColorTheme:    input.ColorTheme,
		Rating:        input.Rating,
		IsVerified:    input.IsVerified,
		ListingType:   input.ListingType,
		CreatedBy:     owner,
	}

	if err := s.properties.Insert(ctx, property); err != nil {
		return nil, err
	}

	s.cache.Populate(ctx, caching.PropertyKey(id), property, caching.DefaultTTL)
	s.cache.Invalidate(ctx, caching.PropertyListKey)

	s.logger.Info("property created",
		zap.String("propertyID", id),
		zap.String("userID", userID),
	)
	return property, nil
}

// Get returns a single listing, cache-aside.
func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return caching.GetOrLoad(ctx, s.cache, caching.PropertyKey(id), caching.DefaultTTL,
		func(ctx context.Context) (*domain.Property, error) {
			return s.properties.FindByID(ctx, id)
		})
}

// Update merges the present fields onto an existing listing. Owner-only. The
// listing's cache key is invalidated; the next read repopulates it.
func (s *PropertyService) Update(ctx context.Context, userID, id string, update domain.PropertyUpdate) (*domain.Property, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !property.IsOwnedBy(userID) {
		return nil, apperrors.NewForbiddenError("only the listing owner may update it")
	}

	property.Apply(update)
	if err := s.properties.Update(ctx, property); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, caching.PropertyKey(id))
	return property, nil
}

// Delete removes a listing. Owner-only; a missing listing is not found. Both
// the listing's key and the aggregate tombstone are invalidated.
func (s *PropertyService) Delete(ctx context.Context, userID, id string) error {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !property.IsOwnedBy(userID) {
		return apperrors.NewForbiddenError("only the listing owner may delete it")
	}

	if err := s.properties.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, caching.PropertyKey(id), caching.PropertyListKey)
	return nil
}

// Search finds listings whose title contains the keyword, case-insensitively.
func (s *PropertyService) Search(ctx context.Context, keyword string) ([]domain.Property, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperrors.NewValidationError("keyword is required for search")
	}

	return caching.GetOrLoadList(ctx, s.cache, caching.SearchKey(keyword), caching.DefaultTTL, nil,
		func(ctx context.Context) ([]domain.Property, error) {
			return s.properties.SearchByTitle(ctx, keyword, listingQueryLimit)
		})
}

// Filter returns listings matching a structured filter, keyed by the
// filter's fingerprint.
func (s *PropertyService) Filter(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	return caching.GetOrLoadList(ctx, s.cache, caching.FilterKey(filter), caching.DefaultTTL, nil,
		func(ctx context.Context) ([]domain.Property, error) {
			return s.properties.Filter(ctx, filter, listingQueryLimit)
		})
}
