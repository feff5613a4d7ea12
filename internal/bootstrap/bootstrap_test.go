package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SentimentService_Go/internal/config"
	"github.com/osse101/SentimentService_Go/internal/domain"
	"github.com/osse101/SentimentService_Go/internal/metrics"
	"github.com/osse101/SentimentService_Go/internal/sentiment"
	"github.com/osse101/SentimentService_Go/internal/server"
	"github.com/osse101/SentimentService_Go/internal/worker"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            8080,
		WorkerPoolSize:  2,
		WorkerQueueSize: 4,
		LogLevel:        "debug",
		LogFormat:       "json",
		Environment:     "dev",
		ServiceName:     "sentiment-service",
		Version:         "test",
		ShutdownTimeout: time.Second,
	}
}

func TestSetupLoggerWithWriter(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	SetupLoggerWithWriter(testConfig(), &buf)

	out := buf.String()
	assert.Contains(t, out, LogMsgLoggingInitialized)
	assert.Contains(t, out, LogMsgStartingService)
	assert.Contains(t, out, LogMsgConfigurationLoaded, "debug level logs the loaded configuration")
	assert.Contains(t, out, `"service":"sentiment-service"`)
}

func TestGracefulShutdown_StopsEverything(t *testing.T) {
	pool := worker.NewPool(2, 4)
	pool.Start()

	srv := server.NewServer(0, pool, sentiment.NewKeywordClassifier(), metrics.New())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	GracefulShutdown(ctx, ShutdownComponents{Server: srv, Pool: pool})

	err := pool.CheckHealth(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPoolStopped)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
