package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, 0, cfg.MetricsPort)
		assert.False(t, cfg.MetricsEnabled())
		assert.Equal(t, 8, cfg.WorkerPoolSize)
		assert.Equal(t, 64, cfg.WorkerQueueSize)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "sentiment-service", cfg.ServiceName)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("METRICS_PORT", "9100")
		t.Setenv("WORKER_POOL_SIZE", "4")
		t.Setenv("WORKER_QUEUE_SIZE", "16")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("SERVICE_NAME", "sentiment-api")
		t.Setenv("VERSION", "1.2.3")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, 9100, cfg.MetricsPort)
		assert.True(t, cfg.MetricsEnabled())
		assert.Equal(t, 4, cfg.WorkerPoolSize)
		assert.Equal(t, 16, cfg.WorkerQueueSize)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "sentiment-api", cfg.ServiceName)
		assert.Equal(t, "1.2.3", cfg.Version)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT value")
	})

	t.Run("returns error for unparsable numeric and duration vars", func(t *testing.T) {
		tests := map[string]string{
			EnvMetricsPort:     "abc",
			EnvWorkerPoolSize:  "eight",
			EnvWorkerQueueSize: "1.5",
			EnvShutdownTimeout: "ten seconds",
		}

		for key, value := range tests {
			t.Run(key, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(key, value)

				cfg, err := Load()

				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), "invalid "+key+" value")
			})
		}
	})

	t.Run("returns error for out of range PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "70000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "Port must be at most 65535")
	})

	t.Run("returns error for zero worker pool size", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("WORKER_POOL_SIZE", "0")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "WorkerPoolSize must be at least 1")
	})

	t.Run("returns error for unknown log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogFormat must be one of")
	})

	t.Run("returns error when metrics port collides with main port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("METRICS_PORT", "8080")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "MetricsPort must differ from Port")
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_LEVEL", "loud")
		t.Setenv("ENVIRONMENT", "moon")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogLevel")
		assert.Contains(t, err.Error(), "Environment")
	})
}

func TestValidate_NilConfig(t *testing.T) {
	assert.EqualError(t, Validate(nil), "config is nil")
}

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		os.Unsetenv("TEST_INT_VAR")

		value, err := getEnvAsInt("TEST_INT_VAR", 42)

		require.NoError(t, err)
		assert.Equal(t, 42, value)
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")

		value, err := getEnvAsInt("TEST_INT_VAR", 42)

		require.NoError(t, err)
		assert.Equal(t, 100, value)
	})

	t.Run("returns error for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")

		_, err := getEnvAsInt("TEST_INT_VAR", 42)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid TEST_INT_VAR value")
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "")
		os.Unsetenv("TEST_DURATION_VAR")

		value, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)

		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, value)
	})

	t.Run("parses valid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "250ms")

		value, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)

		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, value)
	})

	t.Run("returns error for invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "soon")

		_, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid TEST_DURATION_VAR value")
	})
}

func clearEnvVars(t *testing.T) {
	t.Helper()

	// Clear all config-related env vars to ensure clean test state
	envVars := []string{
		EnvPort, EnvMetricsPort, EnvWorkerPoolSize, EnvWorkerQueueSize,
		EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName,
		EnvVersion, EnvShutdownTimeout,
	}

	for _, key := range envVars {
		// Setenv first so the original value is restored after the test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
