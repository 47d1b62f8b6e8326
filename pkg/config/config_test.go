package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "test-secret", cfg.Jwt.Secret)
	assert.Equal(t, 24*time.Hour, cfg.Jwt.Expiry)
	assert.EqualValues(t, 10000, cfg.Account.MinBalance)
	assert.EqualValues(t, 500000, cfg.Account.MaxWithdrawal)
	assert.EqualValues(t, 0, cfg.Account.MinWithdrawal)
	assert.Equal(t, 18, cfg.Account.CutOffAge)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("ACCOUNT_MIN_BALANCE", "25000")
	t.Setenv("ACCOUNT_CUT_OFF_AGE", "20")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.EqualValues(t, 25000, cfg.Account.MinBalance)
	assert.Equal(t, 20, cfg.Account.CutOffAge)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "placeholder")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := Load("does-not-exist.env")
	require.Error(t, err)
}
