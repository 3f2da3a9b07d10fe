package storage

import (
	"fmt"

	"github.com/tropicaldog17/cryptofolio/internal/config"
	"github.com/tropicaldog17/cryptofolio/internal/db"
)

// Open returns the medium selected by cfg.StoreBackend and a func releasing it.
func Open(cfg *config.Config) (KV, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.BackendMemory:
		return NewMemoryKV(), noop, nil
	case config.BackendFile:
		kv, err := NewFileKV(cfg.StoreDir)
		if err != nil {
			return nil, noop, err
		}
		return kv, noop, nil
	case config.BackendSQLite, config.BackendPostgres:
		database, err := openDB(cfg)
		if err != nil {
			return nil, noop, err
		}
		if err := database.Health(); err != nil {
			database.Close()
			return nil, noop, fmt.Errorf("database health check failed: %w", err)
		}
		kv, err := NewGormKV(database)
		if err != nil {
			database.Close()
			return nil, noop, err
		}
		return kv, func() { database.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func openDB(cfg *config.Config) (*db.DB, error) {
	if cfg.StoreBackend == config.BackendSQLite {
		return db.OpenSQLite(cfg.SQLitePath)
	}
	return db.Connect(&db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
}
