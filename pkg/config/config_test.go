package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "travelDB", cfg.Database.Database)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "web/templates/*.html", cfg.Web.TemplatesGlob)
	assert.True(t, cfg.Security.RateLimitEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DATABASE", "travelTest")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URI)
	assert.Equal(t, "travelTest", cfg.Database.Database)
	assert.False(t, cfg.Security.RateLimitEnabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadInvalidNumericFallsBack(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Server.ReadTimeout)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "99999")

	_, err := Load()
	require.Error(t, err)
}

func TestGetServerAddr(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 3000}
	assert.Equal(t, "0.0.0.0:3000", cfg.GetServerAddr())
}
