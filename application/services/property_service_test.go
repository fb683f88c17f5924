package services

import (
	"context"
	"testing"
	"time"

	"proplist-backend/application/caching"
	"proplist-backend/domain"
	apperrors "proplist-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newPropertyFixture() (*PropertyService, *fakePropertyRepo, *recordingCache) {
	repo := newFakePropertyRepo()
	cache := newRecordingCache()
	service := NewPropertyService(repo, newTestAccessor(cache), zap.NewNop())
	return service, repo, cache
}

func validCreateInput(title string) CreatePropertyInput {
	return CreatePropertyInput{
		Title:         title,
		Type:          "Apartment",
		Price:         250000,
		State:         "Karnataka",
		City:          "Bangalore",
		AreaSqFt:      1200,
		Bedrooms:      2,
		Bathrooms:     2,
		Furnished:     "Semi",
		AvailableFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ListedBy:      "Owner",
	}
}

func TestPropertyCreate(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	t.Run("ids are assigned sequentially from the floor", func(t *testing.T) {
		service, _, _ := newPropertyFixture()

		first, err := service.Create(ctx, owner, validCreateInput("First"))
		require.NoError(t, err)
		assert.Equal(t, "PROP1026", first.ID)

		second, err := service.Create(ctx, owner, validCreateInput("Second"))
		require.NoError(t, err)
		assert.Equal(t, "PROP1027", second.ID)
	})

	t.Run("id follows the numeric maximum, not lexicographic order", func(t *testing.T) {
		service, repo, _ := newPropertyFixture()
		repo.properties["PROP1090"] = &domain.Property{ID: "PROP1090"}
		repo.properties["PROP999"] = &domain.Property{ID: "PROP999"}

		created, err := service.Create(ctx, owner, validCreateInput("Next"))
		require.NoError(t, err)
		assert.Equal(t, "PROP1091", created.ID)
	})

	t.Run("fresh listing is written through and the tombstone invalidated", func(t *testing.T) {
		service, _, cache := newPropertyFixture()

		created, err := service.Create(ctx, owner, validCreateInput("Cached"))
		require.NoError(t, err)

		assert.Contains(t, cache.items, caching.PropertyKey(created.ID))
		assert.Equal(t, 1, cache.deleteCount(caching.PropertyListKey))
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		service, repo, _ := newPropertyFixture()

		input := validCreateInput("Incomplete")
		input.City = ""
		_, err := service.Create(ctx, owner, input)
		assert.True(t, apperrors.IsValidation(err))
		assert.Empty(t, repo.properties)
	})

	t.Run("caller identity must be a valid object id", func(t *testing.T) {
		service, _, _ := newPropertyFixture()

		_, err := service.Create(ctx, "not-a-hex-id", validCreateInput("Bad"))
		assert.True(t, apperrors.IsForbidden(err))
	})
}

func TestPropertyGet(t *testing.T) {
	ctx := context.Background()

	t.Run("miss loads from the store and populates", func(t *testing.T) {
		service, repo, cache := newPropertyFixture()
		repo.properties["PROP1026"] = &domain.Property{ID: "PROP1026", Title: "Stored"}

		got, err := service.Get(ctx, "PROP1026")
		require.NoError(t, err)
		assert.Equal(t, "Stored", got.Title)
		assert.Contains(t, cache.items, caching.PropertyKey("PROP1026"))
	})

	t.Run("hit is served without touching the store", func(t *testing.T) {
		service, repo, cache := newPropertyFixture()
		cache.seed(caching.PropertyKey("PROP1026"), domain.Property{ID: "PROP1026", Title: "Cached"})
		delete(repo.properties, "PROP1026")

		got, err := service.Get(ctx, "PROP1026")
		require.NoError(t, err)
		assert.Equal(t, "Cached", got.Title)
	})

	t.Run("missing listing is not found", func(t *testing.T) {
		service, _, _ := newPropertyFixture()

		_, err := service.Get(ctx, "PROP9999")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestPropertyUpdate(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	t.Run("owner update merges fields and invalidates the entry", func(t *testing.T) {
		service, repo, cache := newPropertyFixture()
		repo.properties["PROP1026"] = &domain.Property{
			ID:        "PROP1026",
			Title:     "Old title",
			Price:     100,
			CreatedBy: owner,
		}
		cache.seed(caching.PropertyKey("PROP1026"), domain.Property{ID: "PROP1026", Title: "Old title"})

		newTitle := "New title"
		updated, err := service.Update(ctx, owner.Hex(), "PROP1026", domain.PropertyUpdate{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, float64(100), updated.Price)

		// Stale entry gone; the next read sees the new title.
		assert.NotContains(t, cache.items, caching.PropertyKey("PROP1026"))
		got, err := service.Get(ctx, "PROP1026")
		require.NoError(t, err)
		assert.Equal(t, "New title", got.Title)
	})

	t.Run("non-owner is rejected and the listing unmodified", func(t *testing.T) {
		service, repo, _ := newPropertyFixture()
		repo.properties["PROP1026"] = &domain.Property{
			ID:        "PROP1026",
			Title:     "Old title",
			CreatedBy: owner,
		}

		newTitle := "Hijacked"
		_, err := service.Update(ctx, primitive.NewObjectID().Hex(), "PROP1026", domain.PropertyUpdate{Title: &newTitle})
		assert.True(t, apperrors.IsForbidden(err))
		assert.Equal(t, "Old title", repo.properties["PROP1026"].Title)
	})
}

func TestPropertyDelete(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	t.Run("owner delete removes the listing and invalidates both keys", func(t *testing.T) {
		service, repo, cache := newPropertyFixture()
		repo.properties["PROP1026"] = &domain.Property{ID: "PROP1026", CreatedBy: owner}

		require.NoError(t, service.Delete(ctx, owner.Hex(), "PROP1026"))
		assert.NotContains(t, repo.properties, "PROP1026")
		assert.Equal(t, 1, cache.deleteCount(caching.PropertyKey("PROP1026")))
		assert.Equal(t, 1, cache.deleteCount(caching.PropertyListKey))
	})

	t.Run("non-owner delete is rejected", func(t *testing.T) {
		service, repo, _ := newPropertyFixture()
		repo.properties["PROP1026"] = &domain.Property{ID: "PROP1026", CreatedBy: owner}

		err := service.Delete(ctx, primitive.NewObjectID().Hex(), "PROP1026")
		assert.True(t, apperrors.IsForbidden(err))
		assert.Contains(t, repo.properties, "PROP1026")
	})

	t.Run("missing listing is not found", func(t *testing.T) {
		service, _, _ := newPropertyFixture()

		err := service.Delete(ctx, owner.Hex(), "PROP9999")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestPropertySearch(t *testing.T) {
	ctx := context.Background()

	t.Run("blank keyword is rejected", func(t *testing.T) {
		service, _, _ := newPropertyFixture()

		_, err := service.Search(ctx, "   ")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("results are cached under the lowercased keyword", func(t *testing.T) {
		service, repo, cache := newPropertyFixture()
		repo.searchHits = []domain.Property{{ID: "PROP1026", Title: "Lake House"}}

		results, err := service.Search(ctx, "Lake")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Contains(t, cache.items, caching.SearchKey("lake"))
	})
}

func TestPropertyFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("results are cached under the filter fingerprint", func(t *testing.T) {
		service, repo, cache := newPropertyFixture()
		repo.filterHits = []domain.Property{{ID: "PROP1026"}}
		city := "Pune"
		filter := domain.PropertyFilter{City: &city}

		results, err := service.Filter(ctx, filter)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Contains(t, cache.items, caching.FilterKey(filter))
	})

	t.Run("cached empty result set is not served", func(t *testing.T) {
		service, repo, cache := newPropertyFixture()
		city := "Pune"
		filter := domain.PropertyFilter{City: &city}
		cache.seed(caching.FilterKey(filter), []domain.Property{})
		repo.filterHits = []domain.Property{{ID: "PROP1026"}}

		results, err := service.Filter(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}
