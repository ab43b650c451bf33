package redis

import (
	"context"

	"github.com/google/uuid"
	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
)

// auditStreamSink публикует записи о дальних запросах в Redis Stream.
// В PostgreSQL их сохраняет воркер (internal/worker/audit).
type auditStreamSink struct {
	streams repository.StreamRepository
	stream  string
}

// NewAuditStreamSink создает AuditSink поверх StreamRepository
func NewAuditStreamSink(streams repository.StreamRepository) repository.AuditSink {
	return &auditStreamSink{
		streams: streams,
		stream:  domain.StreamFarQuery,
	}
}

func (s *auditStreamSink) Record(ctx context.Context, record *domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return s.streams.PublishToStream(ctx, s.stream, record)
}
