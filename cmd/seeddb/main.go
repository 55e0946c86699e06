package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/config"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/db"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/log"
)

// seeddb wipes the attractions, visitors, and reviews collections and
// repopulates them with the fixed demo dataset.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(&cfg.Logging); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	logger.Info("Connecting to database for seeding...")
	database, err := db.New(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to configure database client")
	}

	disconnect := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Close(ctx); err != nil {
			logger.WithError(err).Error("Failed to close database connection")
		}
	}

	ctx := context.Background()

	// Unlike the server, the seeder cannot proceed without a database.
	if err := database.Ping(ctx); err != nil {
		logger.WithError(err).Error("Database unreachable")
		disconnect()
		os.Exit(1)
	}

	repo := db.NewRepository(database)
	data, err := repo.Seed(ctx)
	if err != nil {
		logger.WithError(err).Error("Error seeding database")
		disconnect()
		os.Exit(1)
	}

	logger.LogSeed(db.CollectionAttractions, len(data.Attractions))
	logger.LogSeed(db.CollectionVisitors, len(data.Visitors))
	logger.LogSeed(db.CollectionReviews, len(data.Reviews))
	logger.Info("Database seeded successfully!")

	disconnect()
}
