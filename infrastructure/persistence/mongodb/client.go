// Package mongodb implements the document-store ports on MongoDB.
package mongodb

import (
	"context"
	"time"

	"proplist-backend/infrastructure/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	propertiesCollection      = "properties"
	usersCollection           = "users"
	recommendationsCollection = "recommendations"

	connectTimeout = 10 * time.Second
)

// Connect opens a client and verifies the connection with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
