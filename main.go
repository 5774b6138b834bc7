// main.go
package main

import (
	"log"
	"time"

	"user-registration/cmd"
	"user-registration/internal/data/repository"
	"user-registration/internal/wire"
	"user-registration/pkg/database"
	"user-registration/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using zap production logger.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Create or upgrade the schema
	if config.Database.AutoMigrate {
		if err := database.Migrate(database.URL(config.Database)); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema up to date")
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, db, logger)

	shutdownTimeout := time.Duration(config.App.ShutdownTimeoutSeconds) * time.Second
	if err := cmd.APIServer(app.Router, config.App.Port, shutdownTimeout, logger); err != nil {
		logger.Error("HTTP server stopped", zap.Error(err))
		return
	}

	logger.Info("Server stopped")
}
