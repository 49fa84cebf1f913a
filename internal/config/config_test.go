package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MONGO_URL", "mongodb://mongo:27017")
	t.Setenv("REDIS_HOST", "cache")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URL)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "DB_PORT", "DB_SSLMODE", "MONGO_DATABASE", "REDIS_PORT", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, "agenda_db", cfg.Mongo.Database)
	assert.Equal(t, 10, cfg.Mongo.ConnectTimeoutSec)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoadInvalidIntFallsBackToZero(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestRedisAddr(t *testing.T) {
	assert.Equal(t, "localhost:6379", RedisConfig{Host: "localhost", Port: "6379"}.Addr())
}
