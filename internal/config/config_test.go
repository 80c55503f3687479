package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "APP_PORT", "PORT", "DATABASE_URL", "DB_HOST", "TENANTS_CONFIG", "PASSWORD_MODE", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "config/tenants.json", cfg.TenantsConfig)
	assert.Equal(t, "plain", cfg.PasswordMode)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.Persistent())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_PORT", "")
	t.Setenv("DATABASE_URL", "bolt:///tmp/shop.db")
	t.Setenv("PASSWORD_MODE", "BCRYPT")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Persistent())
	assert.Equal(t, "bcrypt", cfg.PasswordMode)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)

	t.Setenv("APP_PORT", "9000")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoad_InvalidPasswordMode(t *testing.T) {
	t.Setenv("PASSWORD_MODE", "rot13")
	_, err := Load()
	assert.ErrorContains(t, err, "PASSWORD_MODE")
}

func TestPersistent_DBHost(t *testing.T) {
	cfg := Config{DBHost: "db"}
	assert.True(t, cfg.Persistent())
}

func TestLoadRateLimitConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	t.Setenv("RATE_LIMIT_ENABLED", "off")
	t.Setenv("RATE_LIMIT_KEY_STRATEGY", "")
	cfg, err := LoadRateLimitConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 10*time.Second, cfg.TTL)
	assert.Equal(t, DefaultKeyStrategy, cfg.KeyStrategy)
	assert.False(t, cfg.SharedAcrossTenants)
	assert.True(t, cfg.AnonymousByIP)

	t.Setenv("RATE_LIMIT_KEY_STRATEGY", "user_browser")
	_, err = LoadRateLimitConfig()
	assert.Error(t, err)
}

func TestKeyStrategy(t *testing.T) {
	parts, err := KeyStrategy("Route_IP").Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyIP, KeyRoute}, parts)

	assert.True(t, KeyStrategy("ip_user_route").Uses(KeyUser))
	assert.False(t, KeyStrategy("ip").Uses(KeyUser))
	assert.False(t, KeyStrategy("bogus").Uses(KeyIP))

	_, err = KeyStrategy("").Parse()
	assert.Error(t, err)
}

func TestRedisEnabled(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_URL", "")
	assert.False(t, RedisEnabled())
	t.Setenv("REDIS_HOST", "cache")
	assert.True(t, RedisEnabled())
	assert.Equal(t, "cache:6379", redisOptionsFromEnv().Addr)
}
