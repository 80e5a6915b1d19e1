package persistence

import (
	"context"
	"errors"
	"time"

	"creatorflow/infrastructure/logger"
	"creatorflow/infrastructure/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type storageEntry struct {
	StorageKey   string    `gorm:"column:storage_key;primaryKey;size:255"`
	StorageValue string    `gorm:"column:storage_value;type:text;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (storageEntry) TableName() string { return storageTable }

// GormStore persists client storage through gorm; it backs the mysql driver.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the storage table if it does not exist.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&storageEntry{})
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry storageEntry
	err := s.db.WithContext(ctx).Where("storage_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while reading client storage (gorm)")
		return "", false, err
	}
	return entry.StorageValue, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value string) error {
	entry := storageEntry{StorageKey: key, StorageValue: value, UpdatedAt: utils.GetCurrentTime()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"storage_value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while writing client storage (gorm)")
	}
	return err
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&storageEntry{}).Error
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while deleting client storage (gorm)")
	}
	return err
}
