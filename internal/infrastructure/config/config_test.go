package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "http://localhost:4200", cfg.CORSOrigin)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.YouTube.CacheTTL)
	assert.Equal(t, "https://www.googleapis.com/youtube/v3", cfg.YouTube.BaseURL)
}

func TestLoad_MissingJWTSecretIsFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(context.Background())
	require.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "3000")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("SEARCH_CACHE_TTL", "1m")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, time.Minute, cfg.YouTube.CacheTTL)
}
