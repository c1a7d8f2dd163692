package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect establishes a connection to MongoDB and verifies it with a ping
// against the primary. The returned client is safe for concurrent use and
// must be released with Disconnect.
func Connect(cfg Config) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, errors.New("database uri is required")
	}

	timeout := cfg.Timeout()
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetTimeout(timeout)
	if cfg.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return client, nil
}

// Disconnect closes the client's connections, waiting at most the configured timeout.
func Disconnect(client *mongo.Client, cfg Config) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()
	return client.Disconnect(ctx)
}

// Collection returns the configured asset collection.
func Collection(client *mongo.Client, cfg Config) *mongo.Collection {
	return client.Database(cfg.Name).Collection(cfg.Collection)
}
