package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"movie-booking/internal/seed"
	"movie-booking/pkg/database"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := seed.Run(ctx, db, logger)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	fmt.Printf("Database seeded: %d users, %d movies\n", len(result.Users), len(result.Movies))
	fmt.Println("Demo credentials:")
	fmt.Println("  admin@cinemabooking.com / admin123 (admin)")
	fmt.Println("  john.doe@example.com / password123")
	fmt.Println("  priya.sharma@example.com / password123")
	fmt.Println("Movies:")
	for _, m := range result.Movies {
		fmt.Printf("  %s (%s) %.0f-%.0f\n", m.Title, strings.Join(m.Language, ", "), m.Pricing.Economy, m.Pricing.Premium)
	}
}
