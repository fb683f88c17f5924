package mongodb

import (
	"context"

	"proplist-backend/application/ports"
	"proplist-backend/domain"
	apperrors "proplist-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RecommendationRepository implements ports.RecommendationRepository. It also
// reads the users collection to resolve sender emails on the received view.
type RecommendationRepository struct {
	collection *mongo.Collection
	users      *mongo.Collection
	logger     *zap.Logger
}

// NewRecommendationRepository creates a recommendation repository.
func NewRecommendationRepository(db *mongo.Database, logger *zap.Logger) ports.RecommendationRepository {
	return &RecommendationRepository{
		collection: db.Collection(recommendationsCollection),
		users:      db.Collection(usersCollection),
		logger:     logger,
	}
}

// Exists reports whether a recommendation for the (from, to, property) triple
// is already recorded.
func (r *RecommendationRepository) Exists(ctx context.Context, fromID, toID, propertyID string) (bool, error) {
	from, err := primitive.ObjectIDFromHex(fromID)
	if err != nil {
		return false, apperrors.NewNotFoundError("user")
	}
	to, err := primitive.ObjectIDFromHex(toID)
	if err != nil {
		return false, apperrors.NewNotFoundError("user")
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{
		"from":     from,
		"to":       to,
		"property": propertyID,
	})
	if err != nil {
		return false, apperrors.NewDatabaseError("check recommendation", err)
	}
	return count > 0, nil
}

// Insert persists a new recommendation.
func (r *RecommendationRepository) Insert(ctx context.Context, rec *domain.Recommendation) error {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, rec); err != nil {
		return apperrors.NewDatabaseError("insert recommendation", err)
	}
	return nil
}

// FindReceived returns the recipient-facing view of the recommendations sent
// to the user, with sender emails resolved.
func (r *RecommendationRepository) FindReceived(ctx context.Context, toID string) ([]domain.ReceivedRecommendation, error) {
	to, err := primitive.ObjectIDFromHex(toID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("user")
	}

	cursor, err := r.collection.Find(ctx, bson.M{"to": to})
	if err != nil {
		return nil, apperrors.NewDatabaseError("find received recommendations", err)
	}
	defer cursor.Close(ctx)

	var recs []domain.Recommendation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, apperrors.NewDatabaseError("find received recommendations", err)
	}
	if len(recs) == 0 {
		return []domain.ReceivedRecommendation{}, nil
	}

	emails, err := r.senderEmails(ctx, recs)
	if err != nil {
		return nil, err
	}

	received := make([]domain.ReceivedRecommendation, 0, len(recs))
	for _, rec := range recs {
		received = append(received, domain.ReceivedRecommendation{
			Property: rec.Property,
			From:     domain.RecommendationSender{Email: emails[rec.From]},
		})
	}
	return received, nil
}

// senderEmails resolves the email of every distinct sender in one query.
func (r *RecommendationRepository) senderEmails(ctx context.Context, recs []domain.Recommendation) (map[primitive.ObjectID]string, error) {
	ids := make([]primitive.ObjectID, 0, len(recs))
	seen := make(map[primitive.ObjectID]bool, len(recs))
	for _, rec := range recs {
		if !seen[rec.From] {
			seen[rec.From] = true
			ids = append(ids, rec.From)
		}
	}

	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperrors.NewDatabaseError("resolve senders", err)
	}
	defer cursor.Close(ctx)

	var senders []domain.User
	if err := cursor.All(ctx, &senders); err != nil {
		return nil, apperrors.NewDatabaseError("resolve senders", err)
	}

	emails := make(map[primitive.ObjectID]string, len(senders))
	for _, sender := range senders {
		emails[sender.ID] = sender.Email
	}
	return emails, nil
}
