package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureStorageSchemaMSSQL creates the key-value table in SQL Server when missing.
func EnsureStorageSchemaMSSQL(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := `IF OBJECT_ID(N'dbo.client_storage', N'U') IS NULL BEGIN
		CREATE TABLE dbo.[client_storage] (
			storage_key NVARCHAR(255) NOT NULL PRIMARY KEY,
			storage_value NVARCHAR(MAX) NOT NULL,
			updated_at DATETIME2 NOT NULL DEFAULT SYSUTCDATETIME()
		)
	END`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("ensure table dbo.%s: %w", storageTable, err)
	}
	return nil
}
