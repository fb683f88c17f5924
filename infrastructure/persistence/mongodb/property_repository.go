package mongodb

import (
	"context"
	"errors"
	"regexp"

	"proplist-backend/application/ports"
	"proplist-backend/domain"
	apperrors "proplist-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// PropertyRepository implements ports.PropertyRepository on a Mongo
// collection keyed by the human-readable listing id.
type PropertyRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewPropertyRepository creates a property repository.
func NewPropertyRepository(db *mongo.Database, logger *zap.Logger) ports.PropertyRepository {
	return &PropertyRepository{
		collection: db.Collection(propertiesCollection),
		logger:     logger,
	}
}

// FindByID returns the listing with the given id.
func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var property domain.Property
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("property")
		}
		return nil, apperrors.NewDatabaseError("find property", err)
	}
	return &property, nil
}

// FindLatestID returns the highest listing id under numeric ordering of the
// suffix. The en_US collation with numeric ordering makes PROP1090 sort above
// PROP999 even though it is lexicographically smaller.
func (r *PropertyRepository) FindLatestID(ctx context.Context) (string, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "id", Value: -1}}).
		SetCollation(&options.Collation{Locale: "en_US", NumericOrdering: true}).
		SetProjection(bson.M{"id": 1})

	var result struct {
		ID string `bson:"id"`
	}
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", apperrors.NewDatabaseError("find latest property id", err)
	}
	return result.ID, nil
}

// Insert persists a new listing.
func (r *PropertyRepository) Insert(ctx context.Context, property *domain.Property) error {
	if property.ObjectID.IsZero() {
		property.ObjectID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, property); err != nil {
		return apperrors.NewDatabaseError("insert property", err)
	}
	return nil
}

// InsertMany bulk-loads listings in one write.
func (r *PropertyRepository) InsertMany(ctx context.Context, properties []domain.Property) error {
	if len(properties) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(properties))
	for i := range properties {
		if properties[i].ObjectID.IsZero() {
			properties[i].ObjectID = primitive.NewObjectID()
		}
		docs = append(docs, properties[i])
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return apperrors.NewDatabaseError("bulk insert properties", err)
	}
	return nil
}

// Update replaces the stored listing document.
func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": property.ID}, property)
	if err != nil {
		return apperrors.NewDatabaseError("update property", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("property")
	}
	return nil
}

// Delete removes the listing with the given id.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return apperrors.NewDatabaseError("delete property", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError("property")
	}
	return nil
}

// SearchByTitle matches the keyword as a case-insensitive substring of the
// title.
func (r *PropertyRepository) SearchByTitle(ctx context.Context, keyword string, limit int64) ([]domain.Property, error) {
	query := bson.M{
		"title": primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"},
	}
	return r.findMany(ctx, "search properties", query, limit)
}

// Filter translates a structured filter into a Mongo query. Tag and amenity
// terms match whole words case-insensitively inside the stored free text.
func (r *PropertyRepository) Filter(ctx context.Context, filter domain.PropertyFilter, limit int64) ([]domain.Property, error) {
	query := bson.M{}

	if filter.Type != nil {
		query["type"] = *filter.Type
	}
	if filter.State != nil {
		query["state"] = *filter.State
	}
	if filter.City != nil {
		query["city"] = *filter.City
	}
	if filter.ListedBy != nil {
		query["listedBy"] = *filter.ListedBy
	}
	if filter.Furnished != nil {
		query["furnished"] = *filter.Furnished
	}
	if filter.IsVerified != nil {
		query["isVerified"] = *filter.IsVerified
	}
	if filter.Bedrooms != nil {
		query["bedrooms"] = *filter.Bedrooms
	}
	if filter.Bathrooms != nil {
		query["bathrooms"] = *filter.Bathrooms
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}

	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": wordRegexes(filter.Tags)}
	}
	if len(filter.Amenities) > 0 {
		query["amenities"] = bson.M{"$in": wordRegexes(filter.Amenities)}
	}

	return r.findMany(ctx, "filter properties", query, limit)
}

func (r *PropertyRepository) findMany(ctx context.Context, operation string, query bson.M, limit int64) ([]domain.Property, error) {
	cursor, err := r.collection.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, apperrors.NewDatabaseError(operation, err)
	}
	defer cursor.Close(ctx)

	properties := []domain.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, apperrors.NewDatabaseError(operation, err)
	}
	return properties, nil
}

// wordRegexes builds case-insensitive whole-word patterns for each term.
func wordRegexes(terms []string) []primitive.Regex {
	regexes := make([]primitive.Regex, 0, len(terms))
	for _, term := range terms {
		regexes = append(regexes, primitive.Regex{
			Pattern: `\b` + regexp.QuoteMeta(term) + `\b`,
			Options: "i",
		})
	}
	return regexes
}
