package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplyMigrations накатывает *.up.sql реестра (parkings, notification_distances)
// в порядке номеров. Миграции идемпотентны (IF NOT EXISTS), поэтому несколько
// suite одного пакета могут вызывать её повторно. Каждый файл выполняется в
// своей транзакции: упавшая миграция не оставляет таблицу наполовину созданной.
func ApplyMigrations(db *sql.DB, migrationsPath string) error {
	entries, err := os.ReadDir(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var upFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			upFiles = append(upFiles, e.Name())
		}
	}
	if len(upFiles) == 0 {
		return fmt.Errorf("no .up.sql migrations in %s", migrationsPath)
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		if err := applyMigration(db, filepath.Join(migrationsPath, name)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	return nil
}

func applyMigration(db *sql.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(string(content)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
