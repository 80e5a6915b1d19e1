package persistence

import (
	"context"
	"database/sql"
	"errors"

	"creatorflow/infrastructure/logger"
	"creatorflow/infrastructure/utils"
)

// SQLStore persists client storage in PostgreSQL.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT storage_value FROM client_storage WHERE storage_key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while reading client storage")
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value string) error {
	q := `INSERT INTO client_storage (storage_key, storage_value, updated_at)
		  VALUES ($1, $2, $3)
		  ON CONFLICT (storage_key) DO UPDATE SET
			storage_value = EXCLUDED.storage_value,
			updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, q, key, value, utils.GetCurrentTime()); err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while writing client storage")
		return err
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM client_storage WHERE storage_key = $1`, key); err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while deleting client storage")
		return err
	}
	return nil
}
