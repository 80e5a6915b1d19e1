package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const storageTable = "client_storage"

// EnsureStorageSchema creates the key-value table in PostgreSQL.
func EnsureStorageSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := `CREATE TABLE IF NOT EXISTS client_storage (
		storage_key VARCHAR(255) PRIMARY KEY,
		storage_value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("ensure table %s: %w", storageTable, err)
	}
	return nil
}
