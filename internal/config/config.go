// README: Config loader with env defaults for HTTP, storage, Redis, and AI settings.
package config

import (
	"os"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Store struct {
		// DataDir holds the flat-file collections (trains.json, bookings.json,
		// users.json). Ignored when a Postgres DSN is set.
		DataDir string
		// DSN switches persistence to Postgres when non-empty.
		DSN string
	}
	Redis struct {
		// Addr enables the quote cache when non-empty.
		Addr string
	}
	AI struct {
		// GeminiKey enables the booking assistant when non-empty.
		GeminiKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("RAIL_HTTP_ADDR", ":8080")
	cfg.Store.DataDir = envOrDefault("RAIL_DATA_DIR", "data")
	cfg.Store.DSN = os.Getenv("RAIL_DB_DSN")
	cfg.Redis.Addr = os.Getenv("RAIL_REDIS_ADDR")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
