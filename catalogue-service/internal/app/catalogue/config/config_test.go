package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.Server.Address())
	assert.Equal(t, "product_events", cfg.Kafka.Topic)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "ru", cfg.Locale)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REDIS_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://user:secret@db:5432/catalogue?sslmode=disable", cfg.Database.URL())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("REDIS_DB", "first")
	_, err := Load()
	assert.Error(t, err)
}
