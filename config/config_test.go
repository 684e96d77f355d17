package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("VOTERS_LIST_CACHE_TTL", "2m")
	t.Setenv("VOTERS_FILTER_OPTIONS_CACHE_TTL", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "*", cfg.App.CORSOrigin)
	assert.Equal(t, 15, cfg.Voters.PageSize)
	assert.True(t, cfg.Voters.SelectedEnabled)
	assert.Equal(t, 2*time.Minute, cfg.Voters.ListCacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.Voters.FilterOptionsCacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, "/storage", cfg.Storage.PublicURL)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.EqualError(t, err, "JWT_SECRET is required")
}
