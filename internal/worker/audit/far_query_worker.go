package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/domain/repository"
	"github.com/parking-registry/internal/observability"
	"github.com/parking-registry/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 50                     // максимум сообщений за раз
	emptyQueueSleep = 200 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза после ошибки чтения
	retryBackoff    = 100 * time.Millisecond // шаг паузы между попытками записи

	// DefaultPendingMinIdle - через сколько неподтверждённое сообщение забирается повторно
	DefaultPendingMinIdle = 30 * time.Second
)

var _ worker.Worker = (*FarQueryWorker)(nil)

// FarQueryWorker переносит записи о дальних запросах из Redis Stream в PostgreSQL
type FarQueryWorker struct {
	*worker.BaseWorker
	streamRepo     repository.StreamRepository
	auditRepo      repository.AuditSink
	metrics        *observability.Metrics
	consumerName   string
	maxRetries     int
	pendingMinIdle time.Duration
}

// NewFarQueryWorker создает новый FarQueryWorker
func NewFarQueryWorker(
	streamRepo repository.StreamRepository,
	auditRepo repository.AuditSink,
	metrics *observability.Metrics,
	consumerGroup string,
	maxRetries int,
	pendingMinIdle time.Duration,
	clock clockwork.Clock,
	logger *zap.Logger,
) *FarQueryWorker {
	hostname, _ := os.Hostname()
	if maxRetries < 1 {
		maxRetries = 1
	}
	if pendingMinIdle < 0 {
		pendingMinIdle = DefaultPendingMinIdle
	}

	return &FarQueryWorker{
		BaseWorker:     worker.NewBaseWorker("far-query-audit", consumerGroup, clock, logger),
		streamRepo:     streamRepo,
		auditRepo:      auditRepo,
		metrics:        metrics,
		consumerName:   fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		maxRetries:     maxRetries,
		pendingMinIdle: pendingMinIdle,
	}
}

// Start запускает воркер
func (w *FarQueryWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting FarQueryWorker",
		zap.String("stream", domain.StreamFarQuery),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamFarQuery, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.Sleep(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.Sleep(ctx, emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch сначала забирает зависшие pending сообщения, затем читает новые,
// и сохраняет их. Возвращает количество прочитанных сообщений.
func (w *FarQueryWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ClaimPending(
		ctx,
		domain.StreamFarQuery,
		w.ConsumerGroup(),
		w.consumerName,
		w.pendingMinIdle,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending: %w", err)
	}

	if len(messages) < maxBatchSize {
		fresh, err := w.streamRepo.ConsumeBatch(
			ctx,
			domain.StreamFarQuery,
			w.ConsumerGroup(),
			w.consumerName,
			maxBatchSize-len(messages),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to consume batch: %w", err)
		}
		messages = append(messages, fresh...)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		record, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamFarQuery, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.persist(ctx, record); err != nil {
			// Сообщение остается в pending и будет забрано через pendingMinIdle
			w.metrics.AuditWriteErrors.Inc()
			logger.Error("Failed to persist far query, leaving message pending",
				zap.String("message_id", msg.ID),
				zap.Int("attempts", w.maxRetries),
				zap.Error(err))
			continue
		}

		w.metrics.AuditRecordsPersisted.Inc()
		if err := w.streamRepo.AckMessage(ctx, domain.StreamFarQuery, w.ConsumerGroup(), msg.ID); err != nil {
			// Повторная доставка безопасна: вставка по тому же ID игнорируется
			logger.Warn("Failed to ack persisted message", zap.String("message_id", msg.ID), zap.Error(err))
		}
	}

	return len(messages), nil
}

// persist пишет запись с повторами
func (w *FarQueryWorker) persist(ctx context.Context, record *domain.AuditRecord) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = w.auditRepo.Record(ctx, record); err == nil {
			return nil
		}
		if attempt < w.maxRetries && !w.Sleep(ctx, time.Duration(attempt)*retryBackoff) {
			break
		}
	}
	return err
}

func parseMessage(msg domain.StreamMessage) (*domain.AuditRecord, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var record domain.AuditRecord
	if err := json.Unmarshal([]byte(msg.Data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if record.ID == uuid.Nil {
		return nil, fmt.Errorf("record without id")
	}

	return &record, nil
}
