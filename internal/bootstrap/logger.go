package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/osse101/SentimentService_Go/internal/config"
	"github.com/osse101/SentimentService_Go/internal/logger"
)

// SetupLogger initializes the process-wide logger from application config and
// logs the startup banner. Source locations are only attached in development.
func SetupLogger(cfg *config.Config) {
	SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger with an explicit destination
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"metrics_port", cfg.MetricsPort,
		"worker_pool_size", cfg.WorkerPoolSize,
		"worker_queue_size", cfg.WorkerQueueSize,
		"shutdown_timeout", cfg.ShutdownTimeout)
}
