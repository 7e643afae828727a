// Package config loads runtime configuration for the burger constructor CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Durations accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://norma.nomoreparties.space/api",
//	  "feed_ws_url": "wss://norma.nomoreparties.space/orders/all",
//	  "storage_backend": "sqlite",
//	  "sqlite_dsn": "burger.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "request_timeout": "10s",
//	  "feed_reconnect_interval": "3s",
//	  "log_level": "info"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
