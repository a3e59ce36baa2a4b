package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mihara/courseflow/internal/dependencies/clock"
	"github.com/mihara/courseflow/internal/services/auth"
	"github.com/mihara/courseflow/internal/services/profile"
	"github.com/mihara/courseflow/internal/services/recommend"
	"github.com/mihara/courseflow/internal/storage"
	"github.com/mihara/courseflow/internal/storage/memory"
	pgstorage "github.com/mihara/courseflow/internal/storage/postgres"
	redisstorage "github.com/mihara/courseflow/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService      *auth.Service
	ProfileService   *profile.Service
	RecommendService *recommend.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis", or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PostgresConfig holds postgres connection settings (required if StorageType is "postgres")
	PostgresConfig *pgstorage.Config
	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
}

// New creates a new application with all dependencies wired.
// The postgres backend has its migrations applied before use.
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		pgStore, err := pgstorage.New(ctx, *cfg.PostgresConfig)
		if err != nil {
			return nil, err
		}
		if err := pgStore.RunMigrations(ctx); err != nil {
			_ = pgStore.Close()
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis', or 'postgres'")
	}

	clk := clock.New()

	authCfg := cfg.AuthConfig
	if authCfg.SessionTTL == 0 {
		authCfg = auth.DefaultConfig()
	}

	return &App{
		Storage:          store,
		Clock:            clk,
		AuthService:      auth.New(store, clk, authCfg, logger),
		ProfileService:   profile.New(store, logger),
		RecommendService: recommend.New(),
	}, nil
}

// Close releases backend resources for storages that hold connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
