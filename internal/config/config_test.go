package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvPort, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvRewardTablePath, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, DefaultRewardTablePath, cfg.RewardTablePath)
}

func TestLoad_ExplicitValues(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvPort, "9999")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvRewardTablePath, "/etc/planner/tables.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/etc/planner/tables.json", cfg.RewardTablePath)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvPort, "not-a-port")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestValidateEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	assert.Error(t, ValidateEnv())

	t.Setenv(EnvAPIKey, "test-key")
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings_ExampleKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "generate_with_openssl_rand_hex_32")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
}
