package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/SentimentService_Go/internal/logger"
	"github.com/osse101/SentimentService_Go/internal/metrics"
)

// HandleMetrics renders the families gathered from g in the Prometheus text format
// @Summary Metrics exposition
// @Tags metrics
// @Produce plain
// @Success 200 {string} string "Prometheus text format"
// @Router /metrics [get]
func HandleMetrics(g prometheus.Gatherer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buf := getBuffer()
		defer putBuffer(buf)

		if err := metrics.WriteText(buf, g); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgMetricsFailed, "error", err)
			respondText(w, r, http.StatusInternalServerError, ErrMsgInternalServerError)
			return
		}

		respondBytes(w, r, http.StatusOK, metrics.ContentTypeExposition, buf.Bytes())
	}
}
