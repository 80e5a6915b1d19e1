package persistence

import (
	"context"
	"fmt"
	"net"
	"strings"

	"creatorflow/domain/repository"
	"creatorflow/infrastructure/cache"
	"creatorflow/infrastructure/configuration"
	"creatorflow/infrastructure/logger"

	"gorm.io/gorm"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMSSQL    = "mssql"
	DriverMySQL    = "mysql"
	DriverMongo    = "mongo"
)

// NewStore opens the client storage selected by cfg.Storage.Driver. The
// returned close func releases the underlying connection.
func NewStore(ctx context.Context, cfg configuration.Config) (repository.IKeyValueStore, func(), error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if driver == "" {
		driver = DriverMemory
	}
	store, closer, err := openStore(ctx, driver, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s storage: %w", driver, err)
	}
	logger.GetLogger().WithField("driver", driver).Info("Client storage ready")
	return NewNamespacedStore(store, cfg.Storage.Namespace), closer, nil
}

func openStore(ctx context.Context, driver string, cfg configuration.Config) (repository.IKeyValueStore, func(), error) {
	switch driver {
	case DriverMemory:
		return NewMemoryStore(), func() {}, nil
	case DriverRedis:
		client, err := cache.NewCache(ctx, net.JoinHostPort(cfg.RedisClient.Host, cfg.RedisClient.Port), cfg.RedisClient.Username, cfg.RedisClient.Password)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewRedisStore(client), func() { _ = client.Close() }, nil
	case DriverPostgres:
		db, err := NewPostgreSQLDB(cfg.Database.Psql)
		if err != nil {
			return nil, nil, err
		}
		if err := EnsureStorageSchema(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return NewSQLStore(db), func() { _ = db.Close() }, nil
	case DriverMSSQL:
		db, err := NewMSSQLDB(cfg.Database.Mssql)
		if err != nil {
			return nil, nil, err
		}
		if err := EnsureStorageSchemaMSSQL(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return NewSQLStoreMSSQL(db), func() { _ = db.Close() }, nil
	case DriverMySQL:
		gdb, err := NewMySQLGorm(cfg.Database.MySql)
		if err != nil {
			return nil, nil, err
		}
		return openGormStore(gdb)
	case DriverMongo:
		client, err := NewMongoDb(ctx, cfg.Database.Mongo)
		if err != nil {
			return nil, nil, err
		}
		closer := func() { _ = client.Disconnect(context.Background()) }
		return NewMongoStore(client, cfg.Database.Mongo.Name), closer, nil
	}
	return nil, nil, fmt.Errorf("unsupported storage driver %q", driver)
}

// openGormStore migrates the storage table and releases the pool when that
// fails.
func openGormStore(gdb *gorm.DB) (repository.IKeyValueStore, func(), error) {
	closer := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	store := NewGormStore(gdb)
	if err := store.Migrate(); err != nil {
		closer()
		return nil, nil, err
	}
	return store, closer, nil
}
