package di

import (
	"context"

	"proplist-backend/application/caching"
	"proplist-backend/application/ports"
	"proplist-backend/application/services"
	"proplist-backend/infrastructure/cache/memory"
	redisclient "proplist-backend/infrastructure/cache/redis"
	"proplist-backend/infrastructure/config"
	"proplist-backend/infrastructure/persistence/mongodb"
	"proplist-backend/pkg/auth"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMongoClient connects to the document store
func ProvideMongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	return mongodb.Connect(ctx, cfg)
}

// ProvideMongoDatabase selects the application database
func ProvideMongoDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.MongoDatabase)
}

// ProvidePropertyRepository creates the listing repository
func ProvidePropertyRepository(db *mongo.Database, logger *zap.Logger) ports.PropertyRepository {
	return mongodb.NewPropertyRepository(db, logger)
}

// ProvideUserRepository creates the account repository
func ProvideUserRepository(db *mongo.Database, logger *zap.Logger) ports.UserRepository {
	return mongodb.NewUserRepository(db, logger)
}

// ProvideRecommendationRepository creates the recommendation repository
func ProvideRecommendationRepository(db *mongo.Database, logger *zap.Logger) ports.RecommendationRepository {
	return mongodb.NewRecommendationRepository(db, logger)
}

// ProvideRedisClient creates the cache client
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	return redisclient.NewClient(cfg)
}

// ProvideCache adapts the configured backend to the Cache port
func ProvideCache(cfg *config.Config, client *redis.Client) ports.Cache {
	if cfg.CacheBackend == "memory" {
		return memory.NewCache()
	}
	return redisclient.NewCache(client)
}

// ProvideCacheAccessor creates the cache-aside accessor
func ProvideCacheAccessor(cache ports.Cache, logger *zap.Logger) *caching.Accessor {
	return caching.NewAccessor(cache, logger)
}

// ProvideJWTGenerator creates the token issuer
func ProvideJWTGenerator(cfg *config.Config) (*auth.JWTGenerator, error) {
	return auth.NewJWTGenerator(auth.JWTConfig{
		SecretKey:  cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		ExpiryTime: cfg.TokenExpiry,
	})
}

// ProvideJWTValidator creates the token verifier
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideAuthService creates the auth service
func ProvideAuthService(users ports.UserRepository, generator *auth.JWTGenerator, logger *zap.Logger) *services.AuthService {
	return services.NewAuthService(users, generator, logger)
}

// ProvidePropertyService creates the property service
func ProvidePropertyService(properties ports.PropertyRepository, accessor *caching.Accessor, logger *zap.Logger) *services.PropertyService {
	return services.NewPropertyService(properties, accessor, logger)
}

// ProvideFavoriteService creates the favorite service
func ProvideFavoriteService(users ports.UserRepository, accessor *caching.Accessor, logger *zap.Logger) *services.FavoriteService {
	return services.NewFavoriteService(users, accessor, logger)
}

// ProvideRecommendationService creates the recommendation service
func ProvideRecommendationService(
	users ports.UserRepository,
	recommendations ports.RecommendationRepository,
	accessor *caching.Accessor,
	logger *zap.Logger,
) *services.RecommendationService {
	return services.NewRecommendationService(users, recommendations, accessor, logger)
}
