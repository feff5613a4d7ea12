package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SentimentService_Go/internal/server"
	"github.com/osse101/SentimentService_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// AdminServer is nil when the internal metrics listener is disabled.
type ShutdownComponents struct {
	Server      *server.Server
	AdminServer *server.Server
	Pool        *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. Public HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Internal metrics server
// 3. Worker pool (drain queued jobs)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.AdminServer != nil {
		slog.Info(LogMsgShuttingDownAdminServer)
		if err := components.AdminServer.Stop(ctx); err != nil {
			slog.Error(LogMsgAdminServerShutdown, "error", err)
		}
	}

	if components.Pool != nil {
		slog.Info(LogMsgDrainingWorkerPool)
		if err := components.Pool.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerPoolShutdown, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
