package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation links a sender, a recipient and a listing. At most one
// recommendation exists per (from, to, property) triple.
type Recommendation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	From      primitive.ObjectID `bson:"from" json:"from"`
	To        primitive.ObjectID `bson:"to" json:"to"`
	Property  string             `bson:"property" json:"property"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// RecommendationSender is the sender view exposed on received recommendations.
type RecommendationSender struct {
	Email string `bson:"email" json:"email"`
}

// ReceivedRecommendation is the recipient-facing projection of a
// recommendation: the listing id plus who sent it.
type ReceivedRecommendation struct {
	Property string               `bson:"property" json:"property"`
	From     RecommendationSender `bson:"from" json:"from"`
}
