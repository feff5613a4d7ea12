package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            int           `validate:"min=1,max=65535"`
	MetricsPort     int           `validate:"min=0,max=65535,nefield=Port"`
	WorkerPoolSize  int           `validate:"min=1,max=1024"`
	WorkerQueueSize int           `validate:"min=1"`
	LogLevel        string        `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat       string        `validate:"oneof=json text"`
	Environment     string        `validate:"oneof=dev development staging prod production test"`
	ServiceName     string        `validate:"required"`
	Version         string        `validate:"required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables.
// A numeric or duration variable that is set but unparsable is an error, never a silent default.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
	}

	var err error
	if cfg.Port, err = getEnvAsInt(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.MetricsPort, err = getEnvAsInt(EnvMetricsPort, DefaultMetricsPort); err != nil {
		return nil, err
	}
	if cfg.WorkerPoolSize, err = getEnvAsInt(EnvWorkerPoolSize, DefaultWorkerPoolSize); err != nil {
		return nil, err
	}
	if cfg.WorkerQueueSize, err = getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MetricsEnabled reports whether the internal metrics listener should run
func (c *Config) MetricsEnabled() bool {
	return c.MetricsPort != 0
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value when unset
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}

// getEnvAsDuration retrieves a duration environment variable such as "5s" or "1m"
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}
