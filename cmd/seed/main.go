package main

import (
	"context"
	"time"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/database"
	"go-gin-event-booking/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("seed")

	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.InitDatabaseContext(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(&cfg.Database); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	if err := database.SeedCatalog(ctx, pool); err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}
	log.Info("seed completed")
}
