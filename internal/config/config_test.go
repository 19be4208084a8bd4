package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.example.test")
	t.Setenv("SESSION_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("TOKEN_TTL_HOURS", "2")

	cfg := Load()

	assert.Equal(t, "https://api.example.test", cfg.BackendURL)
	assert.Equal(t, SessionDriverRedis, cfg.Session.Driver)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Session.Redis.URL)
	assert.Equal(t, 20, cfg.Session.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 2, cfg.Stub.TokenTTLHours)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"BACKEND_URL", "SESSION_DRIVER", "SESSION_SQLITE_PATH", "HTTP_TIMEOUT_SEC", "REDIS_KEY_PREFIX", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "http://localhost:8001", cfg.BackendURL)
	assert.Equal(t, SessionDriverSQLite, cfg.Session.Driver)
	assert.Equal(t, "data/session.db", cfg.Session.SQLitePath)
	assert.Equal(t, 30, cfg.HTTPTimeoutSec)
	assert.Equal(t, "ipoadvisor:", cfg.Session.Redis.KeyPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
