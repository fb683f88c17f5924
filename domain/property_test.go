package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNextPropertyID(t *testing.T) {
	t.Run("empty store starts above the floor", func(t *testing.T) {
		assert.Equal(t, "PROP1026", NextPropertyID(""))
	})

	t.Run("increments the numeric suffix", func(t *testing.T) {
		assert.Equal(t, "PROP1027", NextPropertyID("PROP1026"))
		assert.Equal(t, "PROP1091", NextPropertyID("PROP1090"))
	})

	t.Run("malformed latest id falls back to the floor", func(t *testing.T) {
		assert.Equal(t, "PROP1026", NextPropertyID("bogus"))
		assert.Equal(t, "PROP1026", NextPropertyID("PROP"))
	})
}

func TestParsePropertyIDNumber(t *testing.T) {
	n, ok := ParsePropertyIDNumber("PROP1090")
	assert.True(t, ok)
	assert.Equal(t, 1090, n)

	_, ok = ParsePropertyIDNumber("HOUSE1090")
	assert.False(t, ok)

	_, ok = ParsePropertyIDNumber("PROP1090x")
	assert.False(t, ok)
}

func TestIsOwnedBy(t *testing.T) {
	owner := primitive.NewObjectID()
	property := Property{ID: "PROP1026", CreatedBy: owner}

	assert.True(t, property.IsOwnedBy(owner.Hex()))
	assert.False(t, property.IsOwnedBy(primitive.NewObjectID().Hex()))

	unowned := Property{ID: "PROP1027"}
	assert.False(t, unowned.IsOwnedBy(owner.Hex()))
}

func TestApply(t *testing.T) {
	property := Property{
		ID:       "PROP1026",
		Title:    "Old title",
		Price:    100,
		Bedrooms: 2,
	}

	newTitle := "New title"
	newPrice := 250.0
	property.Apply(PropertyUpdate{Title: &newTitle, Price: &newPrice})

	assert.Equal(t, "New title", property.Title)
	assert.Equal(t, 250.0, property.Price)
	assert.Equal(t, 2, property.Bedrooms)

	// A nil amenities slice leaves the field alone; an empty one clears it.
	property.Amenities = []string{"pool"}
	property.Apply(PropertyUpdate{})
	assert.Equal(t, []string{"pool"}, property.Amenities)
	property.Apply(PropertyUpdate{Amenities: []string{}})
	assert.Empty(t, property.Amenities)
}
