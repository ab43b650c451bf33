package usecase

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
	"github.com/parking-registry/internal/observability"
	"github.com/parking-registry/internal/pkg/errors"
	"github.com/parking-registry/internal/pkg/utils"
	"github.com/parking-registry/internal/pkg/validator"
	"github.com/parking-registry/internal/usecase/dto"
	"go.uber.org/zap"
)

// DefaultAlertThresholdKm - расстояние, начиная с которого запрос считается дальним
const DefaultAlertThresholdKm = 0.5

// ResolveNearest находит ближайшую к точке парковку полным перебором.
// При равных расстояниях выигрывает парковка, встреченная первой.
// ok == false, если список пуст.
func ResolveNearest(parkings []*domain.Parking, lat, lon float64) (nearest *domain.Parking, distance float64, ok bool) {
	for _, p := range parkings {
		d := utils.GreatCircleDistance(lat, lon, p.Latitud, p.Longitud)
		if nearest == nil || d < distance {
			nearest = p
			distance = d
		}
	}
	return nearest, distance, nearest != nil
}

// NearestUseCase - поиск ближайшей парковки с журналированием дальних запросов
type NearestUseCase struct {
	snapshot    *ParkingSnapshot
	auditSink   repository.AuditSink
	thresholdKm float64
	clock       clockwork.Clock
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// NewNearestUseCase создает новый экземпляр NearestUseCase
func NewNearestUseCase(
	snapshot *ParkingSnapshot,
	auditSink repository.AuditSink,
	thresholdKm float64,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *NearestUseCase {
	return &NearestUseCase{
		snapshot:    snapshot,
		auditSink:   auditSink,
		thresholdKm: thresholdKm,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}
}

// ThresholdKm возвращает порог оповещения в километрах
func (uc *NearestUseCase) ThresholdKm() float64 {
	return uc.thresholdKm
}

// FindNearest возвращает ближайшую парковку или nil, если парковок нет.
// Если расстояние больше порога, в журнал пишется одна запись с координатами запроса.
// Ошибка журнала не влияет на результат.
func (uc *NearestUseCase) FindNearest(ctx context.Context, lat, lon float64) (*domain.NearestParking, error) {
	parkings, err := uc.snapshot.Load(ctx)
	if err != nil {
		uc.metrics.NearestQueries.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("find nearest: %w", err)
	}

	parking, distance, ok := ResolveNearest(parkings, lat, lon)
	if !ok {
		uc.metrics.NearestQueries.WithLabelValues("not_found").Inc()
		return nil, nil
	}

	uc.metrics.NearestQueries.WithLabelValues("found").Inc()
	uc.metrics.NearestDistanceKm.Observe(distance)

	if distance > uc.thresholdKm {
		uc.metrics.FarQueries.Inc()
		uc.recordFarQuery(ctx, lat, lon, distance)
	}

	return &domain.NearestParking{Parking: parking, Distance: distance}, nil
}

func (uc *NearestUseCase) recordFarQuery(ctx context.Context, lat, lon, distance float64) {
	record := &domain.AuditRecord{
		Latitud:   lat,
		Longitud:  lon,
		CreatedAt: uc.clock.Now().UTC(),
	}

	// Запись не должна теряться, если клиент уже отключился
	if err := uc.auditSink.Record(context.WithoutCancel(ctx), record); err != nil {
		uc.metrics.AuditWriteErrors.Inc()
		uc.logger.Warn("Failed to record far query",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Float64("distance_km", distance),
			zap.Error(err))
		return
	}

	uc.logger.Debug("Far query recorded",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Float64("distance_km", distance))
}

// Nearest валидирует точку запроса, ищет ближайшую парковку и формирует ответ
func (uc *NearestUseCase) Nearest(ctx context.Context, req dto.NearestRequest) (*dto.NearestResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	result, err := uc.FindNearest(ctx, *req.Latitud, *req.Longitud)
	if err != nil {
		uc.logger.Error("Failed to find nearest parking", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if result == nil {
		return nil, errors.ErrNoParkings
	}

	resp := &dto.NearestResponse{
		Parking:  result.Parking,
		Distance: result.Distance,
	}
	if result.Distance > uc.thresholdKm {
		resp.Warning = fmt.Sprintf(
			"El parking más cercano está a %.2f km, supera el límite de %.1f km",
			result.Distance, uc.thresholdKm,
		)
	}

	return resp, nil
}
