package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyParkings    = "parkings:all"
	keyParkingsGen = "parkings:gen"
	keyStats       = "stats:current"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetParkings получает снимок парковок. Порядок элементов сохраняется.
func (r *cacheRepository) GetParkings(ctx context.Context) ([]*domain.Parking, error) {
	data, err := r.Get(ctx, keyParkings)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	parkings := make([]*domain.Parking, 0)
	if err := json.Unmarshal(data, &parkings); err != nil {
		r.logger.Error("Failed to unmarshal parkings from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal parkings: %w", err)
	}

	return parkings, nil
}

func (r *cacheRepository) ParkingsGeneration(ctx context.Context) (int64, error) {
	gen, err := r.client.Get(ctx, keyParkingsGen).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get parkings generation: %w", err)
	}
	return gen, nil
}

// SetParkings записывает снимок под WATCH на ключ поколения: если между чтением
// из БД и записью парковки изменились, снимок отбрасывается.
func (r *cacheRepository) SetParkings(ctx context.Context, parkings []*domain.Parking, generation int64, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(parkings)
	if err != nil {
		return false, fmt.Errorf("marshal parkings: %w", err)
	}

	stored := false
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, keyParkingsGen).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, keyParkings, data, ttl)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, keyParkingsGen)

	if errors.Is(err, redis.TxFailedErr) {
		r.logger.Debug("Parkings snapshot is stale, skipping cache write")
		return false, nil
	}
	if err != nil {
		r.logger.Error("Failed to set parkings snapshot", zap.Error(err))
		return false, fmt.Errorf("cache set parkings: %w", err)
	}

	if !stored {
		r.logger.Debug("Parkings snapshot is stale, skipping cache write",
			zap.Int64("generation", generation))
	}
	return stored, nil
}

func (r *cacheRepository) InvalidateParkings(ctx context.Context) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, keyParkingsGen)
		pipe.Del(ctx, keyParkings)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to invalidate parkings", zap.Error(err))
		return fmt.Errorf("cache invalidate parkings: %w", err)
	}
	return nil
}

// GetStats получает статистику из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	data, err := r.Get(ctx, keyStats)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var stats domain.Statistics
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SetStats сохраняет статистику в кеше
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, keyStats, data, ttl)
}
