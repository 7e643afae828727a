package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/stellarburgers/internal/flagx"
	"github.com/dmitrijs2005/stellarburgers/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. Empty fields keep the value
// already present in Config.
type JsonConfig struct {
	APIBaseURL            string         `json:"api_base_url"`
	FeedWSURL             string         `json:"feed_ws_url"`
	StorageBackend        string         `json:"storage_backend"`
	SQLiteDSN             string         `json:"sqlite_dsn"`
	RedisAddr             string         `json:"redis_addr"`
	RequestTimeout        timex.Duration `json:"request_timeout"`
	FeedReconnectInterval timex.Duration `json:"feed_reconnect_interval"`
	LogLevel              string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c or -config flag. Without a path it does nothing.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.FeedWSURL, jc.FeedWSURL)
	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.SQLiteDSN, jc.SQLiteDSN)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.FeedReconnectInterval.Duration > 0 {
		cfg.FeedReconnectInterval = jc.FeedReconnectInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
