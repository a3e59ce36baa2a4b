package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mihara/courseflow/internal/config"
	"github.com/mihara/courseflow/internal/factory"
	pgstorage "github.com/mihara/courseflow/internal/storage/postgres"
	redisstorage "github.com/mihara/courseflow/internal/storage/redis"
)

// newApp builds the application against the storage backend named
// by the environment, the same way the server does
func newApp(ctx context.Context) (*factory.App, error) {
	cfg := config.Load()

	factoryCfg := factory.Config{
		Logger:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		StorageType: cfg.StorageType,
	}
	factoryCfg.AuthConfig.SessionTTL = cfg.SessionTTL

	switch cfg.StorageType {
	case factory.StorageTypeRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	case factory.StorageTypePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL required when STORAGE_TYPE=postgres")
		}
		factoryCfg.PostgresConfig = &pgstorage.Config{URL: cfg.DatabaseURL}
	}

	return factory.New(ctx, factoryCfg)
}
