package repository

import (
	"context"

	"github.com/parking-registry/internal/domain"
)

// AuditSink принимает записи о дальних запросах.
// Реализации: синхронная запись в PostgreSQL или публикация в Redis Stream.
type AuditSink interface {
	Record(ctx context.Context, record *domain.AuditRecord) error
}

// AuditRepository - постоянное хранилище журнала дальних запросов
type AuditRepository interface {
	AuditSink

	// Count возвращает количество записей в журнале
	Count(ctx context.Context) (int, error)
}
