package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[logs]
file = ""
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "apt-reservation-service"

[previsit_api]
url = "http://localhost:9091"
timeout = 10

[move_api]
url = "http://localhost:9092"
timeout = 10

[customer_api]
url = "http://localhost:9090"
timeout = 10
access_token = "at"
refresh_token = "rt"

[session]
ttl_minutes = 30
cookie_max_age_sec = 1800
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "http://localhost:9091", cfg.PrevisitAPI.URL)
	assert.Equal(t, "http://localhost:9092", cfg.MoveAPI.URL)
	assert.Equal(t, "at", cfg.CustomerAPI.AccessToken)
	assert.Equal(t, 30, cfg.Session.TTLMinutes)
	assert.Equal(t, 1800, cfg.Session.CookieMaxAgeSec)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		errPart string
	}{
		{
			name:    "zero port",
			mutate:  func(s string) string { return replaceLine(s, "http_port = 8080", "http_port = 0") },
			errPart: "http_port",
		},
		{
			name:    "missing previsit url",
			mutate:  func(s string) string { return replaceLine(s, `url = "http://localhost:9091"`, `url = ""`) },
			errPart: "previsit_api.url",
		},
		{
			name:    "zero session ttl",
			mutate:  func(s string) string { return replaceLine(s, "ttl_minutes = 30", "ttl_minutes = 0") },
			errPart: "ttl_minutes",
		},
		{
			name:    "metrics enabled without path",
			mutate:  func(s string) string { return replaceLine(s, `path = "/metrics"`, `path = ""`) },
			errPart: "metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutate(validConfig)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func replaceLine(s, old, repl string) string {
	return strings.Replace(s, old, repl, 1)
}
