package config

import "time"

// Storage backend selectors.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds runtime settings for the Tarot client.
//
// Fields:
//   - ServerBaseURL: scheme://host[:port] of the identity service, without
//     the /api/auth suffix.
//   - RequestTimeout: per-request bound on gateway calls.
//   - Storage: durable session storage backend (memory, sqlite, redis).
//   - SQLitePath: database file for the sqlite backend.
//   - RedisAddr / RedisPassword: connection settings for the redis backend.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	Storage        string
	SQLitePath     string
	RedisAddr      string
	RedisPassword  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.Storage = StorageSQLite
	c.SQLitePath = "session.db"
	c.RedisAddr = "127.0.0.1:6379"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
