package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/parking-registry/internal/domain/repository"
	"github.com/parking-registry/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewParkingRepositoryForTest creates a parking repository with test database and logger
func NewParkingRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ParkingRepository {
	return postgres.NewParkingRepository(NewDBForTest(db, logger))
}

// NewAuditRepositoryForTest creates an audit repository with test database and logger
func NewAuditRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AuditRepository {
	return postgres.NewAuditRepository(NewDBForTest(db, logger))
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger), logger)
}
