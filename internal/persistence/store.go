package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/config"
)

// Logical keys of the two persisted documents.
const (
	KeyEmployees = "hr_employees_v1"
	KeyTaxonomy  = "hr_config_v1"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("store closed")

// Store is the key-value contract the repositories persist through. Values are opaque strings.
type Store interface {
	// Load returns the value stored under key; found is false when the key was never saved.
	Load(ctx context.Context, key string) (value string, found bool, err error)
	Save(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close()
}

// Open builds the store selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (Store, error) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if cfg.Postgres.RunMigrations {
			if err := RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return pg, nil
	case config.StorageRedis:
		return NewRedis(cfg.Redis, logger), nil
	case config.StorageSQLite:
		lite, err := NewSQLite(ctx, cfg.SQLite, logger)
		if err != nil {
			return nil, err
		}
		return lite, nil
	case config.StorageBadger:
		kv, err := NewBadger(cfg.Badger, logger)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.StorageMemory, "":
		logger.Warn("using in-memory storage; data is lost on restart")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
