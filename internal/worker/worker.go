package worker

import (
	"context"
)

// Worker - фоновый процесс, обслуживающий Redis Stream реестра
// (сейчас только перенос журнала дальних запросов в PostgreSQL).
// WorkerManager запускает каждый Worker в своей горутине.
type Worker interface {
	// Start блокируется до Stop или отмены ctx
	Start(ctx context.Context) error

	// Stop просит воркер завершить текущий batch и выйти. Повторный вызов безопасен.
	Stop() error

	// Name используется в логах менеджера
	Name() string
}
