package persistence

import (
	"context"
	"database/sql"
	"errors"

	"creatorflow/infrastructure/logger"
	"creatorflow/infrastructure/utils"
)

// SQLStoreMSSQL persists client storage in SQL Server / Azure SQL.
type SQLStoreMSSQL struct {
	db *sql.DB
}

func NewSQLStoreMSSQL(db *sql.DB) *SQLStoreMSSQL {
	return &SQLStoreMSSQL{db: db}
}

func (s *SQLStoreMSSQL) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT storage_value FROM dbo.client_storage WHERE storage_key = @p1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while reading client storage (mssql)")
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStoreMSSQL) Set(ctx context.Context, key string, value string) error {
	q := `MERGE dbo.client_storage WITH (HOLDLOCK) AS target
		USING (SELECT @p1 AS storage_key) AS source
		ON target.storage_key = source.storage_key
		WHEN MATCHED THEN UPDATE SET storage_value = @p2, updated_at = @p3
		WHEN NOT MATCHED THEN INSERT (storage_key, storage_value, updated_at) VALUES (@p1, @p2, @p3);`
	if _, err := s.db.ExecContext(ctx, q, key, value, utils.GetCurrentTime()); err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while writing client storage (mssql)")
		return err
	}
	return nil
}

func (s *SQLStoreMSSQL) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM dbo.client_storage WHERE storage_key = @p1`, key); err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while deleting client storage (mssql)")
		return err
	}
	return nil
}
