package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, 2*time.Second, cfg.PaymentDelay)
	assert.Equal(t, 5432, cfg.PostgresPort)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("PAYMENT_DELAY", "50ms")
	t.Setenv("POSTGRES_PORT", "5433")

	cfg := Load()
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "redis", cfg.StorageBackend)
	assert.Equal(t, 50*time.Millisecond, cfg.PaymentDelay)
	assert.Equal(t, 5433, cfg.PostgresPort)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-port")
	t.Setenv("PAYMENT_DELAY", "soon")

	cfg := Load()
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Equal(t, 2*time.Second, cfg.PaymentDelay)
}
