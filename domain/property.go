package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyIDFloor is the numeric suffix assumed when the store holds no
// properties yet; the first assigned listing id is PROP1026.
const PropertyIDFloor = 1025

var propertyIDPattern = regexp.MustCompile(`^PROP(\d+)$`)

// Property is a single listing. The human-readable listing id (PROP1026, ...)
// lives in the `id` field; the Mongo object id is internal only.
type Property struct {
	ObjectID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID            string             `bson:"id" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Type          string             `bson:"type" json:"type"`
	Price         float64            `bson:"price" json:"price"`
	State         string             `bson:"state" json:"state"`
	City          string             `bson:"city" json:"city"`
	AreaSqFt      float64            `bson:"areaSqFt" json:"areaSqFt"`
	Bedrooms      int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms     int                `bson:"bathrooms" json:"bathrooms"`
	Amenities     []string           `bson:"amenities" json:"amenities"`
	Furnished     string             `bson:"furnished" json:"furnished"`
	AvailableFrom time.Time          `bson:"availableFrom" json:"availableFrom"`
	ListedBy      string             `bson:"listedBy" json:"listedBy"`
	Tags          string             `bson:"tags" json:"tags"` // pipe-separated free text
	ColorTheme    string             `bson:"colorTheme,omitempty" json:"colorTheme,omitempty"`
	Rating        float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	IsVerified    bool               `bson:"isVerified" json:"isVerified"`
	ListingType   string             `bson:"listingType,omitempty" json:"listingType,omitempty"`
	CreatedBy     primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}

// IsOwnedBy reports whether the property was created by the given user.
func (p *Property) IsOwnedBy(userID string) bool {
	return !p.CreatedBy.IsZero() && p.CreatedBy.Hex() == userID
}

// PropertyUpdate carries the fields of a partial update; nil means "leave as is".
type PropertyUpdate struct {
	Title         *string    `json:"title"`
	Type          *string    `json:"type"`
	Price         *float64   `json:"price"`
	State         *string    `json:"state"`
	City          *string    `json:"city"`
	AreaSqFt      *float64   `json:"areaSqFt"`
	Bedrooms      *int       `json:"bedrooms"`
	Bathrooms     *int       `json:"bathrooms"`
	Amenities     []string   `json:"amenities"`
	Furnished     *string    `json:"furnished"`
	AvailableFrom *time.Time `json:"availableFrom"`
	ListedBy      *string    `json:"listedBy"`
	Tags          *string    `json:"tags"`
	ColorTheme    *string    `json:"colorTheme"`
	Rating        *float64   `json:"rating"`
	IsVerified    *bool      `json:"isVerified"`
	ListingType   *string    `json:"listingType"`
}

// Apply merges the present fields of the update onto the property.
func (p *Property) Apply(u PropertyUpdate) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Type != nil {
		p.Type = *u.Type
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.State != nil {
		p.State = *u.State
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.AreaSqFt != nil {
		p.AreaSqFt = *u.AreaSqFt
	}
	if u.Bedrooms != nil {
		p.Bedrooms = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		p.Bathrooms = *u.Bathrooms
	}
	if u.Amenities != nil {
		p.Amenities = u.Amenities
	}
	if u.Furnished != nil {
		p.Furnished = *u.Furnished
	}
	if u.AvailableFrom != nil {
		p.AvailableFrom = *u.AvailableFrom
	}
	if u.ListedBy != nil {
		p.ListedBy = *u.ListedBy
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.ColorTheme != nil {
		p.ColorTheme = *u.ColorTheme
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.IsVerified != nil {
		p.IsVerified = *u.IsVerified
	}
	if u.ListingType != nil {
		p.ListingType = *u.ListingType
	}
}

// ParsePropertyIDNumber extracts the numeric suffix of a listing id.
func ParsePropertyIDNumber(id string) (int, bool) {
	match := propertyIDPattern.FindStringSubmatch(id)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextPropertyID derives the listing id that follows the current numeric
// maximum. An empty or malformed latest id falls back to the floor.
func NextPropertyID(latest string) string {
	n := PropertyIDFloor
	if num, ok := ParsePropertyIDNumber(latest); ok {
		n = num
	}
	return fmt.Sprintf("PROP%d", n+1)
}
