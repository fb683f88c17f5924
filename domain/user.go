package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account holder. Favorites is an insertion-ordered, deduplicated
// list of listing ids.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Favorites []string           `bson:"favorites" json:"favorites"`
}

// HasFavorite reports whether the listing id is already favorited.
func (u *User) HasFavorite(propertyID string) bool {
	for _, id := range u.Favorites {
		if id == propertyID {
			return true
		}
	}
	return false
}
