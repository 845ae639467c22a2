package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, BackendPostgres, cfg.SessionBackend)
	assert.True(t, cfg.DatabaseAutoMigrate)
	assert.False(t, cfg.SessionEnforceExpiry)
	assert.Empty(t, cfg.SessionGenerationDigest)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SESSION_BACKEND", BackendRedis)
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("SESSION_GENERATION_PHRASE", "oLw/d0dMEddTRUkq1ddoPxWlxvT4FIk9YLcv34XxfBI=")
	t.Setenv("SESSION_ENFORCE_EXPIRY", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.SessionBackend)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, "oLw/d0dMEddTRUkq1ddoPxWlxvT4FIk9YLcv34XxfBI=", cfg.SessionGenerationDigest)
	assert.True(t, cfg.SessionEnforceExpiry)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"app_port: \"9000\"\nsession_backend: memory\nlog_format: text\n"), 0o600))

	t.Setenv("APP_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.AppPort, "environment wins over the file")
	assert.Equal(t, BackendMemory, cfg.SessionBackend)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.SessionBackend = "mongo" },
			wantErr: `unknown session backend "mongo"`,
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.AppPort = "" },
			wantErr: "APP_PORT must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{AppPort: "8080", SessionBackend: BackendMemory}
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MemoryRegistrants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`session_backend: memory
memory_registrants:
  - osu_id: 124493
    osu_name: cookiezi
  - osu_id: 7562902
    osu_name: mrekk
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []RegistrantSeed{
		{OsuID: 124493, OsuName: "cookiezi"},
		{OsuID: 7562902, OsuName: "mrekk"},
	}, cfg.MemoryRegistrants)
}

func TestValidate_MemoryRegistrants(t *testing.T) {
	cfg := Config{
		AppPort:           "8080",
		SessionBackend:    BackendMemory,
		MemoryRegistrants: []RegistrantSeed{{OsuID: 1}, {OsuName: "nobody"}},
	}
	assert.EqualError(t, cfg.Validate(), "memory_registrants[1]: osu_id must be positive")
}
