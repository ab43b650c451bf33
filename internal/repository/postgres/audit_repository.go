package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
	"go.uber.org/zap"
)

type auditRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewAuditRepository создает журнал дальних запросов (notification_distances)
func NewAuditRepository(db *DB) repository.AuditRepository {
	return &auditRepository{
		db:     db,
		logger: db.logger,
	}
}

// Record добавляет запись в журнал. Разные запросы не дедуплицируются;
// повторная вставка той же записи (тот же ID) игнорируется.
func (r *auditRepository) Record(ctx context.Context, record *domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	query := `
		INSERT INTO notification_distances (id, latitud, longitud, created_at)
		VALUES (:id, :latitud, :longitud, :created_at)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		r.logger.Error("Failed to insert audit record",
			zap.Float64("latitud", record.Latitud),
			zap.Float64("longitud", record.Longitud),
			zap.Error(err))
		return fmt.Errorf("insert audit record: %w", err)
	}

	return nil
}

func (r *auditRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM notification_distances`); err != nil {
		return 0, fmt.Errorf("count audit records: %w", err)
	}
	return count, nil
}
