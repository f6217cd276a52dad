package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("DESKSERVICE_PRIMARY__ENV", "local")
	t.Setenv("DESKSERVICE_SERVER__PORT", "8080")
	t.Setenv("DESKSERVICE_SERVER__READ_TIMEOUT", "10")
	t.Setenv("DESKSERVICE_SERVER__WRITE_TIMEOUT", "10")
	t.Setenv("DESKSERVICE_SERVER__IDLE_TIMEOUT", "60")
	t.Setenv("DESKSERVICE_SERVER__CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("DESKSERVICE_DATABASE__HOST", "localhost")
	t.Setenv("DESKSERVICE_DATABASE__PORT", "5432")
	t.Setenv("DESKSERVICE_DATABASE__USER", "deskservice")
	t.Setenv("DESKSERVICE_DATABASE__PASSWORD", "secret")
	t.Setenv("DESKSERVICE_DATABASE__NAME", "deskservice")
	t.Setenv("DESKSERVICE_DATABASE__SSL_MODE", "disable")
	t.Setenv("DESKSERVICE_AUTH__SECRET_KEY", "test-secret")
	t.Setenv("DESKSERVICE_AUTH__TOKEN_TTL", "60")
}

func TestNewLoadsFromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 60, cfg.Auth.TokenTTL)
}

func TestNewInjectsObservabilityDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "deskservice", cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestNewFailsOnMissingRequiredValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DESKSERVICE_DATABASE__PASSWORD", "")

	_, err := New()
	assert.Error(t, err)
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevelDefaultsByEnvironment(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
