package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/SentimentService_Go/internal/logger"
)

// readinessTimeout bounds a single readiness probe
const readinessTimeout = 2 * time.Second

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// HandleHealth provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondText(w, r, http.StatusOK, MsgOK)
	}
}

// HandleReadyz reports whether every checker is healthy.
// It is served on the internal listener only.
func HandleReadyz(checkers ...HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		for _, c := range checkers {
			if err := c.CheckHealth(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
				respondText(w, r, http.StatusServiceUnavailable, ErrMsgServiceUnavailable)
				return
			}
		}

		respondText(w, r, http.StatusOK, MsgOK)
	}
}
