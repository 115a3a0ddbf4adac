package main

import (
	"context"
	"log"
	"time"

	"movie-booking/cmd"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/payment"
	"movie-booking/internal/wire"
	"movie-booking/pkg/database"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger = logger.With(zap.String("app", config.App.Name))
	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("payment_gateway", config.Payment.Gateway),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.Migrate(migrateCtx, db)
	cancel()
	if err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)
	if err := repos.Session.CleanExpiredSessions(context.Background()); err != nil {
		logger.Warn("Failed to clean expired sessions", zap.Error(err))
	}

	gateway, err := payment.NewGateway(config.Payment)
	if err != nil {
		logger.Fatal("Failed to init payment gateway", zap.Error(err))
	}

	app := wire.Wiring(repos, gateway, config, logger)

	shutdownTimeout := time.Duration(config.App.ShutdownTimeout) * time.Second
	if err := cmd.APIServer(app.Router, config.App.Port, shutdownTimeout, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
