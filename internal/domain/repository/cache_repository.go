package repository

import (
	"context"
	"time"

	"github.com/parking-registry/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetParkings получает снимок всех парковок (nil при промахе)
	GetParkings(ctx context.Context) ([]*domain.Parking, error)

	// ParkingsGeneration возвращает номер поколения снимка (0, если парковки не менялись)
	ParkingsGeneration(ctx context.Context) (int64, error)

	// SetParkings сохраняет снимок, только если поколение всё ещё равно generation.
	// stored == false означает, что снимок устарел и не записан.
	SetParkings(ctx context.Context, parkings []*domain.Parking, generation int64, ttl time.Duration) (stored bool, err error)

	// InvalidateParkings увеличивает поколение и сбрасывает снимок после изменения данных
	InvalidateParkings(ctx context.Context) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
