package caching

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"proplist-backend/domain"
)

// Cache TTLs. Everything expires after ten minutes except the recipient
// lookup entry, which lives for an hour.
const (
	DefaultTTL         = 10 * time.Minute
	RecipientLookupTTL = time.Hour
)

// PropertyListKey is a tombstone: it is invalidated on every property create
// and delete but never positively cached, so a future aggregate listing view
// can never serve stale data.
const PropertyListKey = "property:list"

// PropertyKey returns the cache key for a single listing.
func PropertyKey(id string) string {
	return "property:" + id
}

// SearchKey returns the cache key for a keyword search over titles.
func SearchKey(keyword string) string {
	return "search:title:" + strings.ToLower(keyword)
}

// FavoritesKey returns the cache key for a user's favorites list.
func FavoritesKey(userID string) string {
	return "favorites:" + userID
}

// ReceivedRecommendationsKey returns the cache key for the recommendations a
// user has received.
func ReceivedRecommendationsKey(userID string) string {
	return "recommendations:received:" + userID
}

// RecipientLookupKey returns the cache key populated when a recommendation
// recipient is looked up by email.
func RecipientLookupKey(userID string) string {
	return "user:search:" + userID
}

// FilterKey fingerprints a structured filter request. The filter struct
// serializes with a fixed field order, so two filters with identical values
// always hash to the same key regardless of the order the client sent them.
func FilterKey(filter domain.PropertyFilter) string {
	data, err := json.Marshal(filter)
	if err != nil {
		// A PropertyFilter is always marshalable; guard anyway.
		data = []byte("{}")
	}
	sum := md5.Sum(data)
	return "filter:" + hex.EncodeToString(sum[:])
}
