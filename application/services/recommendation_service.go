package services

import (
	"context"
	"time"

	"proplist-backend/application/caching"
	"proplist-backend/application/ports"
	"proplist-backend/domain"
	apperrors "proplist-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// RecommendationService manages property recommendations between users.
type RecommendationService struct {
	users           ports.UserRepository
	recommendations ports.RecommendationRepository
	cache           *caching.Accessor
	logger          *zap.Logger
}

// NewRecommendationService creates a recommendation service.
func NewRecommendationService(
	users ports.UserRepository,
	recommendations ports.RecommendationRepository,
	cache *caching.Accessor,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		users:           users,
		recommendations: recommendations,
		cache:           cache,
		logger:          logger,
	}
}

// LookupRecipient resolves a user by email and caches the result under the
// recipient lookup key for an hour. Populating a cache entry as a side effect
// of a lookup is unusual but deliberately preserved.
func (s *RecommendationService) LookupRecipient(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("recipientEmail is required")
	}

	recipient, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("recipient")
		}
		return nil, err
	}

	s.cache.Populate(ctx, caching.RecipientLookupKey(recipient.ID.Hex()), recipient, caching.RecipientLookupTTL)
	return recipient, nil
}

// Recommend records that the sender recommends a listing to the recipient.
// A second recommendation for the same (sender, recipient, property) triple
// is rejected as a conflict, not merged.
func (s *RecommendationService) Recommend(ctx context.Context, senderID, recipientEmail, propertyID string) (*domain.Recommendation, error) {
	if recipientEmail == "" || propertyID == "" {
		return nil, apperrors.NewValidationError("recipientEmail and propertyId are required")
	}

	sender, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return nil, apperrors.NewForbiddenError("invalid caller identity")
	}

	recipient, err := s.users.FindByEmail(ctx, recipientEmail)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("recipient")
		}
		return nil, err
	}

	exists, err := s.recommendations.Exists(ctx, senderID, recipient.ID.Hex(), propertyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("recommendation already sent")
	}

	rec := &domain.Recommendation{
		From:      sender,
		To:        recipient.ID,
		Property:  propertyID,
		CreatedAt: time.Now(),
	}
	if err := s.recommendations.Insert(ctx, rec); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, caching.ReceivedRecommendationsKey(recipient.ID.Hex()))

	s.logger.Info("recommendation created",
		zap.String("from", senderID),
		zap.String("to", recipient.ID.Hex()),
		zap.String("propertyID", propertyID),
	)
	return rec, nil
}

// Received returns the recommendations sent to the user, cache-aside. A
// cached list is only served when every entry still carries a listing id.
func (s *RecommendationService) Received(ctx context.Context, userID string) ([]domain.ReceivedRecommendation, error) {
	return caching.GetOrLoadList(ctx, s.cache, caching.ReceivedRecommendationsKey(userID), caching.DefaultTTL,
		func(recs []domain.ReceivedRecommendation) bool {
			for _, rec := range recs {
				if rec.Property == "" {
					return false
				}
			}
			return true
		},
		func(ctx context.Context) ([]domain.ReceivedRecommendation, error) {
			return s.recommendations.FindReceived(ctx, userID)
		})
}
