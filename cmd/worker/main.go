package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/parking-registry/internal/config"
	"github.com/parking-registry/internal/observability"
	"github.com/parking-registry/internal/pkg/logger"
	"github.com/parking-registry/internal/repository/cache"
	"github.com/parking-registry/internal/repository/postgres"
	redisRepo "github.com/parking-registry/internal/repository/redis"
	"github.com/parking-registry/internal/worker"
	"github.com/parking-registry/internal/worker/audit"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Far Query Audit Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Duration("pending_min_idle", cfg.Worker.PendingMinIdle))

	if cfg.Audit.Mode != config.AuditModeStream {
		log.Warn("AUDIT_MODE is not 'stream': the API writes audit records directly and the stream stays empty",
			zap.String("audit_mode", cfg.Audit.Mode))
	}

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	auditRepo := postgres.NewAuditRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	// 6. Initialize workers
	farQueryWorker := audit.NewFarQueryWorker(
		streamRepo,
		auditRepo,
		metrics,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		cfg.Worker.PendingMinIdle,
		clockwork.NewRealClock(),
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(farQueryWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Stop worker manager before cancelling: the current batch finishes and gets acked
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
