package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
	"github.com/parking-registry/internal/pkg/errors"
	"github.com/parking-registry/internal/pkg/utils"
	"github.com/parking-registry/internal/pkg/validator"
	"github.com/parking-registry/internal/usecase/dto"
	"go.uber.org/zap"
)

// ParkingUseCase обрабатывает бизнес-логику реестра парковок
type ParkingUseCase struct {
	parkingRepo repository.ParkingRepository
	snapshot    *ParkingSnapshot
	clock       clockwork.Clock
	logger      *zap.Logger
}

// NewParkingUseCase создает новый экземпляр ParkingUseCase
func NewParkingUseCase(
	parkingRepo repository.ParkingRepository,
	snapshot *ParkingSnapshot,
	clock clockwork.Clock,
	logger *zap.Logger,
) *ParkingUseCase {
	return &ParkingUseCase{
		parkingRepo: parkingRepo,
		snapshot:    snapshot,
		clock:       clock,
		logger:      logger,
	}
}

// List возвращает все парковки
func (uc *ParkingUseCase) List(ctx context.Context) ([]*domain.Parking, error) {
	parkings, err := uc.snapshot.Load(ctx)
	if err != nil {
		uc.logger.Error("Failed to list parkings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return parkings, nil
}

// Get возвращает парковку по ID
func (uc *ParkingUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Parking, error) {
	parking, err := uc.parkingRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get parking", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if parking == nil {
		return nil, errors.ErrParkingNotFound
	}
	return parking, nil
}

// Create регистрирует новую парковку
func (uc *ParkingUseCase) Create(ctx context.Context, req dto.CreateParkingRequest) (*domain.Parking, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()
	parking := &domain.Parking{
		ID:        uuid.New(),
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Latitud:   *req.Latitud,
		Longitud:  *req.Longitud,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.parkingRepo.Create(ctx, parking); err != nil {
		uc.logger.Error("Failed to create parking", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	uc.snapshot.Invalidate(ctx)

	uc.logger.Info("Parking created",
		zap.String("id", parking.ID.String()),
		zap.String("nombre", parking.Nombre))
	return parking, nil
}

// Update применяет частичное обновление. Все поля проверяются до записи,
// поэтому парковка либо обновляется целиком, либо не меняется.
func (uc *ParkingUseCase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateParkingRequest) (*domain.Parking, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := existing.Apply(req.Patch(), uc.clock.Now().UTC())
	if !utils.ValidateCoordinates(updated.Latitud, updated.Longitud) {
		return nil, errors.ErrInvalidCoordinates
	}

	ok, err := uc.parkingRepo.Update(ctx, &updated)
	if err != nil {
		uc.logger.Error("Failed to update parking", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if !ok {
		// удалена между чтением и записью
		return nil, errors.ErrParkingNotFound
	}
	uc.snapshot.Invalidate(ctx)

	return &updated, nil
}

// Delete удаляет парковку
func (uc *ParkingUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := uc.parkingRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete parking", zap.String("id", id.String()), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if !ok {
		return errors.ErrParkingNotFound
	}
	uc.snapshot.Invalidate(ctx)

	uc.logger.Info("Parking deleted", zap.String("id", id.String()))
	return nil
}

// Seed создает или обновляет парковки по названию.
// Возвращает количество созданных и обновленных записей.
func (uc *ParkingUseCase) Seed(ctx context.Context, seeds []dto.CreateParkingRequest) (created, updated int, err error) {
	for _, seed := range seeds {
		if err := validator.Validate(seed); err != nil {
			return created, updated, err
		}

		existing, err := uc.parkingRepo.GetByName(ctx, seed.Nombre)
		if err != nil {
			uc.logger.Error("Failed to look up parking by name", zap.String("nombre", seed.Nombre), zap.Error(err))
			return created, updated, errors.ErrDatabaseError
		}

		if existing == nil {
			if _, err := uc.Create(ctx, seed); err != nil {
				return created, updated, err
			}
			created++
			continue
		}

		patch := dto.UpdateParkingRequest{
			Direccion: &seed.Direccion,
			Latitud:   seed.Latitud,
			Longitud:  seed.Longitud,
		}
		if _, err := uc.Update(ctx, existing.ID, patch); err != nil {
			return created, updated, err
		}
		updated++
	}

	return created, updated, nil
}

// ReferenceParkings - парковки, которыми заполняется пустая база
func ReferenceParkings() []dto.CreateParkingRequest {
	return []dto.CreateParkingRequest{
		{
			Nombre:    "Parking Centro",
			Direccion: "Calle Principal 123",
			Latitud:   ptrFloat(-34.6037),
			Longitud:  ptrFloat(-58.3816),
		},
		{
			Nombre:    "Parking Norte",
			Direccion: "Avenida Norte 456",
			Latitud:   ptrFloat(-34.5900),
			Longitud:  ptrFloat(-58.4100),
		},
	}
}

func ptrFloat(v float64) *float64 {
	return &v
}
