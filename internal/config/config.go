package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven application settings
type Config struct {
	Addr          string
	StorageType   string // memory, redis, or postgres
	RedisURL      string
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Addr:          getEnv("ADDR", ":8080"),
		StorageType:   getEnv("STORAGE_TYPE", "memory"),
		RedisURL:      os.Getenv("REDIS_URL"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
