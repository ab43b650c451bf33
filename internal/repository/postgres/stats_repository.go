package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
	"go.uber.org/zap"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetStatistics возвращает агрегированную статистику реестра
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM parkings) AS total_parkings,
			(SELECT COUNT(*) FROM notification_distances) AS total_alerts,
			(SELECT MAX(created_at) FROM notification_distances) AS last_alert_at
	`

	var stats domain.Statistics
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		r.logger.Error("failed to get statistics", zap.Error(err))
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	stats.LastUpdated = time.Now().UTC()

	return &stats, nil
}
