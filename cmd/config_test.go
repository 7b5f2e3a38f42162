package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(env(map[string]string{
		"DB_HOST": "localhost",
		"DB_USER": "telecom",
		"DB_NAME": "telecom",
	}))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "5432", config.DBPort)
	assert.Equal(t, "disable", config.DBSslMode)
	assert.Equal(t, 2*time.Second, config.ProvisioningDelay)
	assert.Equal(t, 10*time.Minute, config.IdempotencyTTL)
	assert.Equal(t, zapcore.InfoLevel, config.ZapLevel())
	assert.Equal(t, "host=localhost port=5432 user=telecom password= dbname=telecom sslmode=disable", config.DSN())
}

func TestLoadConfig_Overrides(t *testing.T) {
	config, err := LoadConfig(env(map[string]string{
		"HTTP_PORT":             "9000",
		"DB_HOST":               "db",
		"DB_USER":               "u",
		"DB_NAME":               "n",
		"PROVISIONING_DELAY":    "0s",
		"IDEMPOTENCY_TTL":       "1h",
		"LOG_LEVEL":             "debug",
		"COMMISSION_RATE_LIMIT": "0",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9000", config.HTTPPort)
	assert.Zero(t, config.ProvisioningDelay)
	assert.Equal(t, time.Hour, config.IdempotencyTTL)
	assert.Equal(t, zapcore.DebugLevel, config.ZapLevel())
	assert.Zero(t, config.CommissionRateLimit)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(env(map[string]string{"DB_USER": "u", "DB_NAME": "n"}))
	assert.Error(t, err, "missing DB_HOST")

	_, err = LoadConfig(env(map[string]string{
		"DB_HOST": "db", "DB_USER": "u", "DB_NAME": "n", "PROVISIONING_DELAY": "soon",
	}))
	assert.ErrorContains(t, err, "invalid duration")

	_, err = LoadConfig(env(map[string]string{
		"DB_HOST": "db", "DB_USER": "u", "DB_NAME": "n", "LOG_LEVEL": "verbose",
	}))
	assert.Error(t, err)
}
