package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
	"go.uber.org/zap"
)

const parkingColumns = `id, nombre, direccion, latitud, longitud, created_at, updated_at`

type parkingRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewParkingRepository создает репозиторий парковок
func NewParkingRepository(db *DB) repository.ParkingRepository {
	return &parkingRepository{
		db:     db,
		logger: db.logger,
	}
}

// List возвращает все парковки в порядке вставки. Этот порядок определяет,
// какая из равноудалённых парковок считается ближайшей.
func (r *parkingRepository) List(ctx context.Context) ([]*domain.Parking, error) {
	query := `SELECT ` + parkingColumns + ` FROM parkings ORDER BY created_at ASC, id ASC`

	parkings := make([]*domain.Parking, 0)
	if err := r.db.SelectContext(ctx, &parkings, query); err != nil {
		r.logger.Error("Failed to list parkings", zap.Error(err))
		return nil, fmt.Errorf("list parkings: %w", err)
	}

	return parkings, nil
}

func (r *parkingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Parking, error) {
	query := `SELECT ` + parkingColumns + ` FROM parkings WHERE id = $1`

	var p domain.Parking
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get parking", zap.String("id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("get parking %s: %w", id, err)
	}

	return &p, nil
}

func (r *parkingRepository) GetByName(ctx context.Context, nombre string) (*domain.Parking, error) {
	query := `SELECT ` + parkingColumns + ` FROM parkings WHERE nombre = $1 ORDER BY created_at ASC, id ASC LIMIT 1`

	var p domain.Parking
	if err := r.db.GetContext(ctx, &p, query, nombre); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get parking by name", zap.String("nombre", nombre), zap.Error(err))
		return nil, fmt.Errorf("get parking by name %q: %w", nombre, err)
	}

	return &p, nil
}

func (r *parkingRepository) Create(ctx context.Context, parking *domain.Parking) error {
	query := `
		INSERT INTO parkings (` + parkingColumns + `)
		VALUES (:id, :nombre, :direccion, :latitud, :longitud, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, parking); err != nil {
		r.logger.Error("Failed to create parking", zap.String("nombre", parking.Nombre), zap.Error(err))
		return fmt.Errorf("create parking: %w", err)
	}

	return nil
}

func (r *parkingRepository) Update(ctx context.Context, parking *domain.Parking) (bool, error) {
	query := `
		UPDATE parkings
		SET nombre = :nombre,
			direccion = :direccion,
			latitud = :latitud,
			longitud = :longitud,
			updated_at = :updated_at
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, parking)
	if err != nil {
		r.logger.Error("Failed to update parking", zap.String("id", parking.ID.String()), zap.Error(err))
		return false, fmt.Errorf("update parking %s: %w", parking.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update parking %s rows affected: %w", parking.ID, err)
	}

	return affected > 0, nil
}

func (r *parkingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM parkings WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete parking", zap.String("id", id.String()), zap.Error(err))
		return false, fmt.Errorf("delete parking %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete parking %s rows affected: %w", id, err)
	}

	return affected > 0, nil
}
