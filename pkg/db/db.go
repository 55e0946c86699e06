package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	CollectionAttractions = "attractions"
	CollectionVisitors    = "visitors"
	CollectionReviews     = "reviews"
)

// DB wraps the mongo client with additional functionality
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	config   *config.DatabaseConfig
}

// New creates a new database handle. The underlying client dials lazily;
// call Ping to verify the deployment is actually reachable.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(time.Duration(cfg.ConnectTimeout) * time.Second).
		SetServerSelectionTimeout(time.Duration(cfg.ServerSelectionTimeout) * time.Second)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	return &DB{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

// Ping verifies the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(db.config.ServerSelectionTimeout)*time.Second)
	defer cancel()

	return db.client.Ping(ctx, nil)
}

// Database returns the underlying mongo database
func (db *DB) Database() *mongo.Database {
	return db.database
}

// Collection accessors
func (db *DB) Attractions() *mongo.Collection {
	return db.database.Collection(CollectionAttractions)
}

func (db *DB) Visitors() *mongo.Collection {
	return db.database.Collection(CollectionVisitors)
}

func (db *DB) Reviews() *mongo.Collection {
	return db.database.Collection(CollectionReviews)
}

// Close disconnects the client
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// HealthCheck performs a health check on the database
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.client.Ping(ctx, nil)
}
