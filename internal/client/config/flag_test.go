package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://localhost:3000/api", "-w", "ws://localhost:3000/orders/all",
				"-s", "redis", "-d", "x.db", "-r", "redis:6379", "-t", "5", "-l", "debug"},
			expected: &Config{
				APIBaseURL:     "http://localhost:3000/api",
				FeedWSURL:      "ws://localhost:3000/orders/all",
				StorageBackend: "redis",
				SQLiteDSN:      "x.db",
				RedisAddr:      "redis:6379",
				RequestTimeout: 5 * time.Second,
				LogLevel:       "debug",
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"cmd", "-c", "cfg.json", "-t", "2"},
			expected: &Config{RequestTimeout: 2 * time.Second},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
