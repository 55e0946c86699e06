package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/config"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/db"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/log"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/webserver"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := log.Init(&cfg.Logging); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	logger.Info("Starting travel web server")

	// Initialize database
	logger.Info("Connecting to database...")
	database, err := db.New(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to configure database client")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Close(ctx); err != nil {
			logger.WithError(err).Error("Failed to close database connection")
		}
	}()

	// An unreachable database is not fatal; requests fail individually
	// until it recovers.
	if err := database.Ping(context.Background()); err != nil {
		logger.WithError(err).Error("Database unreachable at startup")
	} else {
		logger.Info("Database connected")
	}

	// Initialize HTTP server
	repo := db.NewRepository(database)
	server, err := webserver.New(cfg, repo, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create HTTP server")
	}

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	logger.LogSystem("websrv", "start", true, map[string]interface{}{
		"addr": cfg.Server.GetServerAddr(),
	})

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.GracefulStop)*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
