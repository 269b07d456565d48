package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("EXPIRY_CHECK_PERIOD", "")
	t.Setenv("EXPIRY_AUTO_RELEASE", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 3*time.Second, cfg.Expiry.CheckPeriod)
	assert.False(t, cfg.Expiry.AutoRelease)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("EXPIRY_CHECK_PERIOD", "1m")
	t.Setenv("EXPIRY_AUTO_RELEASE", "true")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, time.Minute, cfg.Expiry.CheckPeriod)
	assert.True(t, cfg.Expiry.AutoRelease)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("EXPIRY_CHECK_PERIOD", "soon")
	t.Setenv("EXPIRY_AUTO_RELEASE", "maybe")

	cfg := Load()
	assert.Equal(t, 3*time.Second, cfg.Expiry.CheckPeriod)
	assert.False(t, cfg.Expiry.AutoRelease)
}
