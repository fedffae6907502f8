// Package store implements the persistence layer of the application on top
// of MongoDB. It exposes repositories for the "Users" and "Todos" collections
// behind small interfaces and maps driver-level failures to the sentinel
// errors declared in errors.go.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/avrorin/graphql-todo/internal/config"
	"github.com/avrorin/graphql-todo/internal/logger"
	"github.com/avrorin/graphql-todo/models"
)

// DB bundles the long-lived MongoDB client with the application database
// handle. It is acquired once at process start and shared by every request;
// repositories only issue commands through it and never close it.
type DB struct {
	client *mongo.Client

	// Database is the application database holding the Users and Todos
	// collections.
	*mongo.Database

	logger *logger.Logger
}

// NewMongoDB connects to the MongoDB deployment described by cfg and verifies
// the connection with a ping against the primary.
//
// The returned *DB owns the underlying client; callers must release it with
// [DB.Disconnect] during shutdown.
func NewMongoDB(ctx context.Context, cfg config.Mongo, logger *logger.Logger) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectingToMongo, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPingingMongo, err)
	}

	logger.Info().Str("database", cfg.Database).Msg("connected to mongodb")

	return &DB{
		client:   client,
		Database: client.Database(cfg.Database),
		logger:   logger,
	}, nil
}

// EnsureIndexes creates the indexes the application relies on. Currently a
// single unique index on Users.email, which backs the duplicate-email check
// during sign-up. Index creation is idempotent.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := db.Collection(models.User{}.CollectionName()).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("%w: %w", ErrCreatingIndexes, err)
	}

	return nil
}

// Disconnect closes the underlying MongoDB client. Called once during
// process shutdown.
func (db *DB) Disconnect(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting from mongodb: %w", err)
	}

	return nil
}
