package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "REDIS_ADDR", "JWT_SECRET", "TOKEN_EXPIRY_HOURS", "FACET_CRON", "LOGIN_RATE_PER_MIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 72, cfg.TokenExpiryHours)
	assert.Equal(t, "0 3 * * *", cfg.FacetCron)
	assert.Equal(t, 10, cfg.LoginRatePerMin)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.NotEmpty(t, cfg.RedisAddr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("FACET_CRON", "30 4 * * *")

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "30 4 * * *", cfg.FacetCron)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("TOKEN_EXPIRY_HOURS", "")

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 72, cfg.TokenExpiryHours)
}
