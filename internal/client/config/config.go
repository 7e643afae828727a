package config

import "time"

// Config holds runtime settings for the burger constructor client.
//
// Fields:
//   - APIBaseURL: root of the REST API.
//   - FeedWSURL: websocket endpoint streaming the global order feed.
//   - StorageBackend: persistent key/value backend, "sqlite" or "redis".
//   - SQLiteDSN: path of the local SQLite database.
//   - RedisAddr: host:port of Redis when StorageBackend is "redis".
//   - RequestTimeout: per-request HTTP timeout.
//   - FeedReconnectInterval: minimal delay between feed reconnects.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL            string
	FeedWSURL             string
	StorageBackend        string
	SQLiteDSN             string
	RedisAddr             string
	RequestTimeout        time.Duration
	FeedReconnectInterval time.Duration
	LogLevel              string
}

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://norma.nomoreparties.space/api"
	c.FeedWSURL = "wss://norma.nomoreparties.space/orders/all"
	c.StorageBackend = BackendSQLite
	c.SQLiteDSN = "burger.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RequestTimeout = 10 * time.Second
	c.FeedReconnectInterval = 3 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
