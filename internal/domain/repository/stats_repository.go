package repository

import (
	"context"

	"github.com/parking-registry/internal/domain"
)

// StatsRepository определяет методы для получения статистики
type StatsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
