package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/SentimentService_Go/internal/bootstrap"
	"github.com/osse101/SentimentService_Go/internal/config"
	"github.com/osse101/SentimentService_Go/internal/metrics"
	"github.com/osse101/SentimentService_Go/internal/sentiment"
	"github.com/osse101/SentimentService_Go/internal/server"
	"github.com/osse101/SentimentService_Go/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sentiment-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	bootstrap.SetupLogger(cfg)

	pool := worker.NewPool(cfg.WorkerPoolSize, cfg.WorkerQueueSize)
	pool.Start()

	m := metrics.New()
	m.ObserveWorkerPool(pool)
	classifier := sentiment.NewKeywordClassifier()

	srv := server.NewServer(cfg.Port, pool, classifier, m)

	var admin *server.Server
	if cfg.MetricsEnabled() {
		admin = server.NewAdminServer(cfg.MetricsPort, cfg.Version, m, pool)
	} else {
		slog.Info(bootstrap.LogMsgMetricsListenerOff)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	serve(srv, errCh)
	if admin != nil {
		serve(admin, errCh)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info(bootstrap.LogMsgShutdownSignal)
	case serveErr = <-errCh:
		slog.Error(bootstrap.LogMsgServerFailed, "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		AdminServer: admin,
		Pool:        pool,
	})

	return serveErr
}

// serve starts s in the background; a clean close is not reported
func serve(s *server.Server, errCh chan<- error) {
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s: %w", s.Addr(), err)
		}
	}()
}
