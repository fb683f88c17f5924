package services

import (
	"context"
	"encoding/json"
	"time"

	"proplist-backend/application/caching"
	"proplist-backend/domain"
	apperrors "proplist-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// recordingCache is an in-test cache that records invalidations.
type recordingCache struct {
	items   map[string][]byte
	deletes []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{items: make(map[string][]byte)}
}

func (c *recordingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok := c.items[key]
	return data, ok, nil
}

func (c *recordingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.items[key] = value
	return nil
}

func (c *recordingCache) Delete(ctx context.Context, key string) error {
	c.deletes = append(c.deletes, key)
	delete(c.items, key)
	return nil
}

func (c *recordingCache) deleteCount(key string) int {
	count := 0
	for _, deleted := range c.deletes {
		if deleted == key {
			count++
		}
	}
	return count
}

func (c *recordingCache) seed(key string, value interface{}) {
	data, _ := json.Marshal(value)
	c.items[key] = data
}

func newTestAccessor(cache *recordingCache) *caching.Accessor {
	return caching.NewAccessor(cache, zap.NewNop())
}

// fakePropertyRepo is an in-memory PropertyRepository.
type fakePropertyRepo struct {
	properties map[string]*domain.Property
	searchHits []domain.Property
	filterHits []domain.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: make(map[string]*domain.Property)}
}

func (r *fakePropertyRepo) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	property, ok := r.properties[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("property")
	}
	copied := *property
	return &copied, nil
}

func (r *fakePropertyRepo) FindLatestID(ctx context.Context) (string, error) {
	latest := ""
	max := -1
	for id := range r.properties {
		if n, ok := domain.ParsePropertyIDNumber(id); ok && n > max {
			max = n
			latest = id
		}
	}
	return latest, nil
}

func (r *fakePropertyRepo) Insert(ctx context.Context, property *domain.Property) error {
	copied := *property
	r.properties[property.ID] = &copied
	return nil
}

func (r *fakePropertyRepo) InsertMany(ctx context.Context, properties []domain.Property) error {
	for i := range properties {
		copied := properties[i]
		r.properties[copied.ID] = &copied
	}
	return nil
}

func (r *fakePropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	if _, ok := r.properties[property.ID]; !ok {
		return apperrors.NewNotFoundError("property")
	}
	copied := *property
	r.properties[property.ID] = &copied
	return nil
}

func (r *fakePropertyRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.properties[id]; !ok {
		return apperrors.NewNotFoundError("property")
	}
	delete(r.properties, id)
	return nil
}

func (r *fakePropertyRepo) SearchByTitle(ctx context.Context, keyword string, limit int64) ([]domain.Property, error) {
	return r.searchHits, nil
}

func (r *fakePropertyRepo) Filter(ctx context.Context, filter domain.PropertyFilter, limit int64) ([]domain.Property, error) {
	return r.filterHits, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) addUser(email string, favorites []string) *domain.User {
	user := &domain.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Favorites: favorites,
	}
	r.users[user.ID.Hex()] = user
	return user
}

func (r *fakeUserRepo) Insert(ctx context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return apperrors.NewValidationError("user already exists or invalid data")
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	r.users[user.ID.Hex()] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user")
	}
	copied := *user
	copied.Favorites = append([]string(nil), user.Favorites...)
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user")
}

func (r *fakeUserRepo) UpdateFavorites(ctx context.Context, id string, favorites []string) error {
	user, ok := r.users[id]
	if !ok {
		return apperrors.NewNotFoundError("user")
	}
	user.Favorites = append([]string(nil), favorites...)
	return nil
}

// fakeRecommendationRepo is an in-memory RecommendationRepository.
type fakeRecommendationRepo struct {
	recs []domain.Recommendation
}

func (r *fakeRecommendationRepo) Exists(ctx context.Context, fromID, toID, propertyID string) (bool, error) {
	for _, rec := range r.recs {
		if rec.From.Hex() == fromID && rec.To.Hex() == toID && rec.Property == propertyID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRecommendationRepo) Insert(ctx context.Context, rec *domain.Recommendation) error {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	r.recs = append(r.recs, *rec)
	return nil
}

func (r *fakeRecommendationRepo) FindReceived(ctx context.Context, toID string) ([]domain.ReceivedRecommendation, error) {
	received := []domain.ReceivedRecommendation{}
	for _, rec := range r.recs {
		if rec.To.Hex() == toID {
			received = append(received, domain.ReceivedRecommendation{Property: rec.Property})
		}
	}
	return received, nil
}
