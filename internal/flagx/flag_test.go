package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", "http://localhost/api"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "inline value",
			args:    []string{"-config=alt.json", "-a", "http://localhost/api"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "single and double dash are the same flag",
			args:    []string{"--config=first.json", "--c", "second.json"},
			allowed: []string{"-c", "-config"},
			want:    []string{"--config=first.json", "--c", "second.json"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional", "--", "-"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-s"},
			allowed: []string{"-s"},
			want:    []string{"-s"},
		},
		{
			name:    "next flag is not taken as a value",
			args:    []string{"-s", "-d", "burger.db"},
			allowed: []string{"-s"},
			want:    []string{"-s"},
		},
		{
			name:    "inline value may look like a flag",
			args:    []string{"-w=--weird"},
			allowed: []string{"-w"},
			want:    []string{"-w=--weird"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-l", "debug", "-a", "x", "-l", "warn"},
			allowed: []string{"-l"},
			want:    []string{"-l", "debug", "-l", "warn"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/sb/short.json"}, "/etc/sb/short.json"},
		{"long", []string{"-config", "/etc/sb/long.json"}, "/etc/sb/long.json"},
		{"double dash inline", []string{"--config=/etc/sb/x.json"}, "/etc/sb/x.json"},
		{"mixed with other flags", []string{"-a", "http://h/api", "-c", "c.json", "-l", "debug"}, "c.json"},
		{"absent", []string{"-s", "redis"}, ""},
		{"last wins", []string{"-c", "1.json", "-config", "2.json"}, "2.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPath(tt.args))
		})
	}
}

func TestJsonConfigFlags_ReadsProcessArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"client", "-c", "/tmp/burger.json"}
	assert.Equal(t, "/tmp/burger.json", JsonConfigFlags())
}
