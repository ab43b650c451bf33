package main

// @title Parking Registry API
// @version 1.0.0
// @description Реестр парковок с координатами и поиск ближайшей парковки к точке.
// @description
// @description Основные возможности:
// @description - CRUD парковок
// @description - Поиск ближайшей парковки (расстояние по большому кругу, км)
// @description - Журнал запросов, для которых ближайшая парковка дальше 0.5 км
// @description - Статистика по реестру и журналу

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:9000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer JWT: "Bearer <token>"

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/parking-registry/docs"
	"github.com/parking-registry/internal/config"
	httpDelivery "github.com/parking-registry/internal/delivery/http"
	"github.com/parking-registry/internal/delivery/http/handler"
	"github.com/parking-registry/internal/domain/repository"
	"github.com/parking-registry/internal/observability"
	"github.com/parking-registry/internal/pkg/logger"
	"github.com/parking-registry/internal/repository/cache"
	"github.com/parking-registry/internal/repository/postgres"
	redisRepo "github.com/parking-registry/internal/repository/redis"
	"github.com/parking-registry/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Parking Registry")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("audit_mode", cfg.Audit.Mode),
		zap.Float64("alert_threshold_km", cfg.Nearest.AlertThresholdKm),
		zap.Bool("auth_enabled", cfg.Auth.Enabled),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Metrics
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	// 6. Initialize Repositories
	parkingRepo := postgres.NewParkingRepository(db)
	auditRepo := postgres.NewAuditRepository(db)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	var auditSink repository.AuditSink = auditRepo
	if cfg.Audit.Mode == config.AuditModeStream {
		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
		auditSink = redisRepo.NewAuditStreamSink(streamRepo)
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	clock := clockwork.NewRealClock()
	snapshot := usecase.NewParkingSnapshot(parkingRepo, cacheRepo, cfg.Cache.ParkingsCacheTTL, metrics, log)

	parkingUC := usecase.NewParkingUseCase(parkingRepo, snapshot, clock, log)
	nearestUC := usecase.NewNearestUseCase(
		snapshot,
		auditSink,
		cfg.Nearest.AlertThresholdKm,
		clock,
		metrics,
		log,
	)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	parkingHandler := handler.NewParkingHandler(parkingUC, nearestUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		metrics,
		registry,
		parkingHandler,
		statsHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
