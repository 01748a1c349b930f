package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `
[server]
http_port = 9090

[logs]
level = "debug"

[source]
kind = "api"

[booking_api]
url = "http://backend:5000/api/"
timeout = 5

[auth]
jwt_secret = "file-secret"
admin_roles = ["admin", "manager"]

[refresh]
enabled = false

[calendar]
timezone = "Europe/Moscow"
`

const yamlConfig = `
server:
  http_port: 9191
source:
  kind: postgres
database:
  dbname: bookings
auth:
  jwt_secret: yaml-secret
refresh:
  cron: "*/10 * * * *"
`

func TestParse_TOML(t *testing.T) {
	cfg, err := Parse([]byte(tomlConfig), ".toml")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, []string{"admin", "manager"}, cfg.Auth.AdminRoles)
	assert.False(t, cfg.Refresh.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "Europe/Moscow", cfg.Calendar.Timezone)
}

func TestParse_YAML(t *testing.T) {
	cfg, err := Parse([]byte(yamlConfig), ".yml")
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.HTTPPort)
	assert.Equal(t, SourcePostgres, cfg.Source.Kind)
	assert.Equal(t, "bookings", cfg.Database.DBName)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Refresh.Enabled)
	assert.Equal(t, "*/10 * * * *", cfg.Refresh.Cron)
	assert.NoError(t, cfg.Validate())
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("[server"), ".toml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse([]byte("server: [1"), ".yaml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		"SMC_JWT_SECRET":        "env-secret",
		"SMC_BOOKING_API_TOKEN": "svc",
		"SMC_HTTP_PORT":         "7070",
		"SMC_DB_PASSWORD":       "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	require.NoError(t, cfg.applyEnv(lookup))

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "svc", cfg.BookingAPI.ServiceToken)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Empty(t, cfg.Database.Password)

	env["SMC_HTTP_PORT"] = "eighty"
	assert.ErrorIs(t, cfg.applyEnv(lookup), ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.BookingAPI.URL = "http://backend"
		cfg.Auth.JWTSecret = "secret"
		return cfg
	}

	tests := []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"missing api url", func(c *Config) { c.BookingAPI.URL = "" }, false},
		{"postgres without dbname", func(c *Config) { c.Source.Kind = SourcePostgres }, false},
		{"unknown source", func(c *Config) { c.Source.Kind = "redis" }, false},
		{"missing jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }, false},
		{"bad cron", func(c *Config) { c.Refresh.Cron = "sometimes" }, false},
		{"bad cron ignored when disabled", func(c *Config) { c.Refresh.Cron = "sometimes"; c.Refresh.Enabled = false }, true},
		{"bad timezone", func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" }, false},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlConfig), 0o600))

	t.Setenv("SMC_JWT_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "http://backend:5000/api", cfg.BookingAPI.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.ErrorIs(t, err, ErrInvalidConfig)
}
