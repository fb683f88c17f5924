package di

import (
	"context"

	"proplist-backend/application/caching"
	"proplist-backend/application/ports"
	"proplist-backend/application/services"
	"proplist-backend/infrastructure/config"
	"proplist-backend/pkg/auth"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Container holds every wired component of the application.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	MongoClient *mongo.Client

	PropertyRepository       ports.PropertyRepository
	UserRepository           ports.UserRepository
	RecommendationRepository ports.RecommendationRepository

	Cache         ports.Cache
	CacheAccessor *caching.Accessor

	JWTGenerator *auth.JWTGenerator
	JWTValidator *auth.JWTValidator

	AuthService           *services.AuthService
	PropertyService       *services.PropertyService
	FavoriteService       *services.FavoriteService
	RecommendationService *services.RecommendationService
}

// Shutdown releases external resources held by the container.
func (c *Container) Shutdown(ctx context.Context) {
	if c.MongoClient != nil {
		if err := c.MongoClient.Disconnect(ctx); err != nil {
			c.Logger.Warn("failed to disconnect from document store", zap.Error(err))
		}
	}
	_ = c.Logger.Sync()
}
