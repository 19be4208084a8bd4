package config

import (
	"os"
	"strconv"
)

// Session store drivers.
const (
	SessionDriverSQLite   = "sqlite"
	SessionDriverPostgres = "postgres"
	SessionDriverRedis    = "redis"
	SessionDriverMemory   = "memory"
)

// DatabaseConfig holds PostgreSQL connection settings for the shared session store.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// RedisConfig holds settings for the Redis-backed session store.
type RedisConfig struct {
	URL       string
	KeyPrefix string
}

// SessionConfig selects where the admin bearer token is persisted.
type SessionConfig struct {
	Driver     string
	SQLitePath string
	Database   DatabaseConfig
	Redis      RedisConfig
}

// MinIOConfig holds object storage settings for the file archive.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Prefix    string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string
	Format string
}

// StubConfig configures the local stub backend.
type StubConfig struct {
	Port           string
	AdminEmail     string
	AdminPassword  string
	TokenTTLHours  int
	MaxUploadBytes int
}

// AppConfig is the centralized configuration struct for the gateway, the CLI and the stub backend.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	BackendURL     string
	HTTPTimeoutSec int
	Session        SessionConfig
	MinIO          MinIOConfig
	Log            LogConfig
	Stub           StubConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:8001"),
		HTTPTimeoutSec: getEnvInt("HTTP_TIMEOUT_SEC", 30),
		Session: SessionConfig{
			Driver:     getEnv("SESSION_DRIVER", SessionDriverSQLite),
			SQLitePath: getEnv("SESSION_SQLITE_PATH", "data/session.db"),
			Database: DatabaseConfig{
				Host:               getEnv("DB_HOST", ""),
				Port:               getEnv("DB_PORT", "5432"),
				User:               getEnv("DB_USER", ""),
				Password:           getEnv("DB_PASSWORD", ""),
				Name:               getEnv("DB_NAME", ""),
				SSLMode:            getEnv("DB_SSLMODE", "disable"),
				MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 4),
				MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 2),
				ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			},
			Redis: RedisConfig{
				URL:       getEnv("REDIS_URL", ""),
				KeyPrefix: getEnv("REDIS_KEY_PREFIX", "ipoadvisor:"),
			},
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			Prefix:    getEnv("ARCHIVE_PREFIX", "site-files"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Stub: StubConfig{
			Port:           getEnv("PORT", "8001"),
			AdminEmail:     getEnv("ADMIN_EMAIL", ""),
			AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
			TokenTTLHours:  getEnvInt("TOKEN_TTL_HOURS", 24),
			MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
