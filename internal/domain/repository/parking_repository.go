package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/parking-registry/internal/domain"
)

// ParkingRepository определяет методы для работы с парковками
type ParkingRepository interface {
	// List возвращает все парковки в стабильном порядке (created_at, id)
	List(ctx context.Context) ([]*domain.Parking, error)

	// GetByID возвращает парковку по ID или nil, если её нет
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Parking, error)

	// GetByName возвращает парковку по названию или nil, если её нет
	GetByName(ctx context.Context, nombre string) (*domain.Parking, error)

	// Create сохраняет новую парковку
	Create(ctx context.Context, parking *domain.Parking) error

	// Update перезаписывает все изменяемые поля парковки.
	// Возвращает false, если парковки с таким ID нет.
	Update(ctx context.Context, parking *domain.Parking) (bool, error)

	// Delete удаляет парковку. Возвращает false, если парковки с таким ID нет.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
