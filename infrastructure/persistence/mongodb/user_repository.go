package mongodb

import (
	"context"
	"errors"

	"proplist-backend/application/ports"
	"proplist-backend/domain"
	apperrors "proplist-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserRepository implements ports.UserRepository on a Mongo collection.
type UserRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *mongo.Database, logger *zap.Logger) ports.UserRepository {
	return &UserRepository{
		collection: db.Collection(usersCollection),
		logger:     logger,
	}
}

// Insert persists a new account.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewValidationError("user already exists or invalid data")
		}
		return apperrors.NewDatabaseError("insert user", err)
	}
	return nil
}

// FindByID returns the account with the given hex object id. A malformed id
// behaves like a missing user.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFoundError("user")
	}

	var user domain.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, apperrors.NewDatabaseError("find user", err)
	}
	return &user, nil
}

// FindByEmail returns the account with the given email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, apperrors.NewDatabaseError("find user by email", err)
	}
	return &user, nil
}

// UpdateFavorites replaces the account's favorites list.
func (r *UserRepository) UpdateFavorites(ctx context.Context, id string, favorites []string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewNotFoundError("user")
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"favorites": favorites}},
	)
	if err != nil {
		return apperrors.NewDatabaseError("update favorites", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("user")
	}
	return nil
}
