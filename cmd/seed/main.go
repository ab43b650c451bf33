package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parking-registry/internal/config"
	"github.com/parking-registry/internal/domain/repository"
	"github.com/parking-registry/internal/observability"
	"github.com/parking-registry/internal/pkg/logger"
	"github.com/parking-registry/internal/repository/cache"
	"github.com/parking-registry/internal/repository/postgres"
	"github.com/parking-registry/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// seed создает или обновляет справочные парковки ("Parking Centro", "Parking Norte")
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	// Redis нужен только для сброса кеша снимка; без него API увидит данные после TTL
	var cacheRepo repository.CacheRepository
	if redisClient, err := cache.NewRedis(&cfg.Redis, log); err != nil {
		log.Warn("Redis unavailable, parkings cache will not be invalidated", zap.Error(err))
	} else {
		cacheRepo = cache.NewCacheRepository(redisClient)
		defer redisClient.Close()
	}

	parkingRepo := postgres.NewParkingRepository(db)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	snapshot := usecase.NewParkingSnapshot(parkingRepo, cacheRepo, cfg.Cache.ParkingsCacheTTL, metrics, log)
	parkingUC := usecase.NewParkingUseCase(parkingRepo, snapshot, clockwork.NewRealClock(), log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, updated, err := parkingUC.Seed(ctx, usecase.ReferenceParkings())
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Seeding complete",
		zap.Int("created", created),
		zap.Int("updated", updated))
}
