package main

import (
	"context"
	"fmt"
	"strconv"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/api/handler"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/cron"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/database"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/redis"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/repository"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/storage"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/config"
)

// backend bundles the ledger storage selected by configuration
type backend struct {
	name        string
	ledgers     persistence.LedgerRepository
	locks       persistence.UserLockRepository
	health      handler.HealthCheck
	lockCleaner cron.LockCleaner
	closers     []func()
}

// Close releases every resource of the backend in reverse order
func (b *backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// newBackend connects the configured storage backend
func newBackend(ctx context.Context, cfg *config.Config, tp coreport.TimeProvider, logger coreport.Logger) (*backend, error) {
	b := &backend{name: cfg.Storage.Backend}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		b.ledgers = storage.NewBlobLedgerRepository(storage.NewMemoryStore())
		b.locks = storage.NewMemoryLockRepository(tp)

	case config.BackendFile:
		var compressor storage.Compressor = storage.NoCompression{}
		if cfg.Storage.Compression == "zstd" {
			zstd, err := storage.NewZstdCompression()
			if err != nil {
				return nil, fmt.Errorf("failed to create zstd compressor: %w", err)
			}
			compressor = zstd
		}
		store := storage.NewFileStore(cfg.Storage.FilePath, compressor, logger)
		b.closers = append(b.closers, store.Close)
		b.ledgers = storage.NewBlobLedgerRepository(store)
		b.locks = storage.NewMemoryLockRepository(tp)

	case config.BackendPostgres:
		dbManager := database.NewManager(toDatabaseConfig(cfg.Database), logger, tp)
		if _, err := dbManager.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		b.closers = append(b.closers, func() { _ = dbManager.Close() })

		if err := dbManager.Migrate(ctx); err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		lockRepo := repository.NewUserLockRepository(dbManager.DB(), tp, logger)
		b.ledgers = repository.NewLedgerRepository(dbManager.DB(), tp, logger)
		b.locks = lockRepo
		b.lockCleaner = lockRepo
		b.health = dbManager.Ping

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, redis.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, func() { _ = client.Close() })

		b.ledgers = redis.NewLedgerRepository(client, cfg.Redis.Prefix, logger)
		b.locks = redis.NewLockRepository(client, cfg.Redis.Prefix, logger)
		b.health = func(ctx context.Context) error { return client.Ping(ctx).Err() }

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	return b, nil
}

// toDatabaseConfig maps the application settings onto the database adapter config
func toDatabaseConfig(c config.DatabaseConfig) *database.Config {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		port = 5432
	}
	return &database.Config{
		Driver:          "postgres",
		Host:            c.Host,
		Port:            port,
		Username:        c.Username,
		Password:        c.Password,
		Database:        c.Database,
		SSLMode:         c.SSLMode,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
		QueryTimeout:    c.QueryTimeout,
		LogLevel:        c.LogLevel,
		SlowThreshold:   c.SlowThreshold,
		RetryAttempts:   c.RetryAttempts,
		RetryDelay:      c.RetryDelay,
	}
}
