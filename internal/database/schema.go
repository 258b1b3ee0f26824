package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_entries (
    entry_key   TEXT PRIMARY KEY,
    entry_value TEXT NOT NULL,
    version     BIGINT NOT NULL DEFAULT 0,
    updated_at  BIGINT NOT NULL
)`

// Migrate создает таблицу хранилища ключ-значение. Запрос одинаков
// для SQLite и Postgres.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createKVTable); err != nil {
		return fmt.Errorf("failed to create kv_entries: %w", err)
	}
	return nil
}
