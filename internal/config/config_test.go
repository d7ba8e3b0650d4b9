package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)

	// The token validity window defaults to the 4-hour contract.
	assert.Equal(t, 4*time.Hour, cfg.Security.TokenTTL)
	assert.Equal(t, 10, cfg.Security.BcryptCost)

	assert.Equal(t, "https://api.gravatar.com/v3/profiles", cfg.Gravatar.BaseURL)
	assert.Equal(t, 15*time.Minute, cfg.Gravatar.CacheTTL)

	assert.True(t, cfg.Sweep.Enabled)
	assert.Equal(t, "0 0 * * * *", cfg.Sweep.Schedule)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EHM_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
}
