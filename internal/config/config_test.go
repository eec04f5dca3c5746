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

	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "db.json", cfg.Store.File)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "webshop-api", cfg.Telemetry.ServiceName)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("STORE_SQLITE_PATH", "/tmp/shop.db")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "/tmp/shop.db", cfg.Store.SQLitePath)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webshop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_port: 7000\nstore_backend: redis\nstore_redis_key: shop\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.API.Port)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "shop", cfg.Store.RedisKey)

	// The environment wins over the file.
	t.Setenv("API_PORT", "7001")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.API.Port)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric api port", key: "API_PORT", value: "http"},
		{name: "api port out of range", key: "API_PORT", value: "70000"},
		{name: "non-numeric db port", key: "DB_PORT", value: "x"},
		{name: "unknown backend", key: "STORE_BACKEND", value: "mongo"},
		{name: "empty file path", key: "STORE_FILE", value: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}
