package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
	"github.com/parking-registry/internal/observability"
	"go.uber.org/zap"
)

const cacheKeyParkings = "parkings"

// ParkingSnapshot отдает полный список парковок для поиска и листинга.
// Если задан cacheRepo, снимок кешируется в Redis до первого изменения данных.
type ParkingSnapshot struct {
	parkingRepo repository.ParkingRepository
	cacheRepo   repository.CacheRepository
	ttl         time.Duration
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// NewParkingSnapshot создает новый экземпляр ParkingSnapshot. cacheRepo может быть nil.
func NewParkingSnapshot(
	parkingRepo repository.ParkingRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ParkingSnapshot {
	return &ParkingSnapshot{
		parkingRepo: parkingRepo,
		cacheRepo:   cacheRepo,
		ttl:         ttl,
		metrics:     metrics,
		logger:      logger,
	}
}

// Load возвращает парковки в порядке хранилища (created_at, id).
// Поколение читается до запроса к БД: снимок, прочитанный до конкурентного
// изменения, в кеш не попадает.
func (s *ParkingSnapshot) Load(ctx context.Context) ([]*domain.Parking, error) {
	cacheable := false
	var generation int64

	if s.cacheRepo != nil {
		cached, err := s.cacheRepo.GetParkings(ctx)
		switch {
		case err != nil:
			s.metrics.CacheLookups.WithLabelValues(cacheKeyParkings, "error").Inc()
			s.logger.Warn("Failed to get parkings from cache", zap.Error(err))
		case cached != nil:
			s.metrics.CacheLookups.WithLabelValues(cacheKeyParkings, "hit").Inc()
			return cached, nil
		default:
			s.metrics.CacheLookups.WithLabelValues(cacheKeyParkings, "miss").Inc()
		}

		generation, err = s.cacheRepo.ParkingsGeneration(ctx)
		if err != nil {
			s.logger.Warn("Failed to get parkings generation", zap.Error(err))
		} else {
			cacheable = true
		}
	}

	parkings, err := s.parkingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parkings: %w", err)
	}

	if cacheable {
		if _, err := s.cacheRepo.SetParkings(ctx, parkings, generation, s.ttl); err != nil {
			s.logger.Warn("Failed to cache parkings", zap.Error(err))
		}
	}

	return parkings, nil
}

// Invalidate сбрасывает кешированный снимок. Ошибка кеша только логируется:
// снимок все равно истечет по TTL.
func (s *ParkingSnapshot) Invalidate(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.InvalidateParkings(ctx); err != nil {
		s.logger.Warn("Failed to invalidate parkings cache", zap.Error(err))
	}
}
