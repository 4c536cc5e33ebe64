package storage

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/config"
	"github.com/mauv0809/padel-cup/internal/database"
)

// Open connects to the backend selected by cfg.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	log.Info("Opening blob store", "backend", cfg.Backend, "codec", cfg.Codec)
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendSQLite:
		db, _, err := database.InitDB(cfg.DBName, "", "")
		if err != nil {
			return nil, err
		}
		return NewSQLStore(db), nil
	case config.BackendTurso:
		db, _, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(db), nil
	case config.BackendPostgres:
		db, _, err := database.InitPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(db), nil
	case config.BackendRedis:
		return DialRedis(ctx, cfg.RedisURL, "padel:")
	case config.BackendS3:
		return NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
