package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.ReleaseMode)
	assert.Equal(t, time.Hour, cfg.CacheMaxAge)
	assert.Equal(t, 1663, cfg.MaxURLLength)
	assert.Equal(t, 2000, cfg.DownloadQRWidth)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_RELEASE", "false")
	t.Setenv("CACHE_MAX_AGE", "10m")
	t.Setenv("MAX_URL_LENGTH", "512")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.False(t, cfg.ReleaseMode)
	assert.Equal(t, 10*time.Minute, cfg.CacheMaxAge)
	assert.Equal(t, 512, cfg.MaxURLLength)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("CACHE_MAX_AGE", "soon")
	t.Setenv("MAX_URL_LENGTH", "-5")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.CacheMaxAge)
	assert.Equal(t, 1663, cfg.MaxURLLength)
}
