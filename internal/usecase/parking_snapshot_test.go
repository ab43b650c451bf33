package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/observability"
	"github.com/parking-registry/internal/repository/cache"
	"github.com/parking-registry/internal/usecase"
	"github.com/parking-registry/internal/usecase/dto"
)

func newRedisCache(t *testing.T) *cache.Redis {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisFromClient(client, zap.NewNop())
}

func TestParkingSnapshot_ConcurrentWriteDropsStaleSnapshot(t *testing.T) {
	repo := new(MockParkingRepository)
	sink := new(MockAuditSink)
	cacheRepo := cache.NewCacheRepository(newRedisCache(t))
	metrics := observability.NewMetricsForTesting()
	logger := zap.NewNop()
	clock := clockwork.NewFakeClockAt(testNow)

	snapshot := usecase.NewParkingSnapshot(repo, cacheRepo, 5*time.Minute, metrics, logger)
	parkingUC := usecase.NewParkingUseCase(repo, snapshot, clock, logger)
	nearestUC := usecase.NewNearestUseCase(snapshot, sink, usecase.DefaultAlertThresholdKm, clock, metrics, logger)

	far := &domain.Parking{ID: uuid.New(), Nombre: "far", Direccion: "far 1", Latitud: 40, Longitud: 40}
	near := &domain.Parking{ID: uuid.New(), Nombre: "near", Direccion: "near 1", Latitud: 10, Longitud: 10}

	listed := make(chan struct{})
	release := make(chan struct{})

	// первый List отдаёт старые данные и ждёт, пока пройдёт запись
	repo.On("List", mock.Anything).Run(func(mock.Arguments) {
		close(listed)
		<-release
	}).Return([]*domain.Parking{far}, nil).Once()
	repo.On("List", mock.Anything).Return([]*domain.Parking{far, near}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	loaded := make(chan []*domain.Parking, 1)
	go func() {
		parkings, err := snapshot.Load(context.Background())
		assert.NoError(t, err)
		loaded <- parkings
	}()

	<-listed
	_, err := parkingUC.Create(context.Background(), dto.CreateParkingRequest{
		Nombre:    "near",
		Direccion: "near 1",
		Latitud:   floatPtr(10),
		Longitud:  floatPtr(10),
	})
	require.NoError(t, err)
	close(release)

	stale := <-loaded
	assert.Len(t, stale, 1)

	cached, err := cacheRepo.GetParkings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cached, "snapshot read before the write must not be cached")

	result, err := nearestUC.FindNearest(context.Background(), 10, 10)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "near", result.Parking.Nombre)
	assert.Equal(t, 0.0, result.Distance)
	sink.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestParkingSnapshot_CachesAndServesFromCache(t *testing.T) {
	repo := new(MockParkingRepository)
	cacheRepo := cache.NewCacheRepository(newRedisCache(t))
	snapshot := usecase.NewParkingSnapshot(repo, cacheRepo, 5*time.Minute, observability.NewMetricsForTesting(), zap.NewNop())

	p := &domain.Parking{ID: uuid.New(), Nombre: "Parking Centro", Latitud: -34.6037, Longitud: -58.3816}
	repo.On("List", mock.Anything).Return([]*domain.Parking{p}, nil).Once()

	first, err := snapshot.Load(context.Background())
	require.NoError(t, err)
	second, err := snapshot.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	repo.AssertNumberOfCalls(t, "List", 1)

	snapshot.Invalidate(context.Background())
	repo.On("List", mock.Anything).Return([]*domain.Parking{}, nil).Once()

	third, err := snapshot.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, third)
	repo.AssertNumberOfCalls(t, "List", 2)
}
