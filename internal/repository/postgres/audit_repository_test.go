package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
	"github.com/parking-registry/internal/repository/postgres/testhelpers"
)

// AuditStatsTestSuite тестирует журнал дальних запросов и статистику
type AuditStatsTestSuite struct {
	suite.Suite
	testDB   *testhelpers.TestDB
	audit    repository.AuditRepository
	parkings repository.ParkingRepository
	stats    repository.StatsRepository
	ctx      context.Context
}

func TestAuditStatsSuite(t *testing.T) {
	suite.Run(t, new(AuditStatsTestSuite))
}

func (s *AuditStatsTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.audit = testhelpers.NewAuditRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.parkings = testhelpers.NewParkingRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.stats = testhelpers.NewStatsRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *AuditStatsTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *AuditStatsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *AuditStatsTestSuite) TestRecord_NoDeduplication() {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		err := s.audit.Record(s.ctx, &domain.AuditRecord{Latitud: -34.7, Longitud: -58.5, CreatedAt: at})
		s.Require().NoError(err)
	}

	count, err := s.audit.Count(s.ctx)
	s.NoError(err)
	s.Equal(2, count)
}

func (s *AuditStatsTestSuite) TestRecord_AssignsID() {
	rec := &domain.AuditRecord{Latitud: 1, Longitud: 2, CreatedAt: time.Now()}
	s.Require().NoError(s.audit.Record(s.ctx, rec))
	s.NotEqual(uuid.Nil, rec.ID)
}

func (s *AuditStatsTestSuite) TestRecord_SameIDIsIdempotent() {
	rec := &domain.AuditRecord{ID: uuid.New(), Latitud: 1, Longitud: 2, CreatedAt: time.Now()}
	s.Require().NoError(s.audit.Record(s.ctx, rec))
	s.Require().NoError(s.audit.Record(s.ctx, rec))

	count, err := s.audit.Count(s.ctx)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *AuditStatsTestSuite) TestGetStatistics() {
	empty, err := s.stats.GetStatistics(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, empty.TotalParkings)
	s.Equal(0, empty.TotalAlerts)
	s.Nil(empty.LastAlertAt)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.parkings.Create(s.ctx, &domain.Parking{
		ID: uuid.New(), Nombre: "P", Direccion: "D", CreatedAt: now, UpdatedAt: now,
	}))
	s.Require().NoError(s.audit.Record(s.ctx, &domain.AuditRecord{Latitud: 1, Longitud: 1, CreatedAt: now}))

	stats, err := s.stats.GetStatistics(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, stats.TotalParkings)
	s.Equal(1, stats.TotalAlerts)
	s.Require().NotNil(stats.LastAlertAt)
	s.True(now.Equal(*stats.LastAlertAt))
	s.False(stats.LastUpdated.IsZero())
}
