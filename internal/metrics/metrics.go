package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/SentimentService_Go/internal/domain"
)

// Metrics holds the service's internal instruments, all registered on one registry
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal        *prometheus.CounterVec
	HTTPRequestDuration      *prometheus.HistogramVec
	HTTPRequestsInFlight     prometheus.Gauge
	SentimentClassifications *prometheus.CounterVec
}

// New creates a fresh registry with process, Go runtime, HTTP and business metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameHTTPRequestsTotal,
				Help: HelpTextHTTPRequestsTotal,
			},
			[]string{LabelMethod, LabelPath, LabelStatus},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricNameHTTPRequestDuration,
				Help:    HelpTextHTTPRequestDuration,
				Buckets: HTTPLatencyBuckets,
			},
			[]string{LabelMethod, LabelPath},
		),

		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: MetricNameHTTPRequestsInFlight,
				Help: HelpTextHTTPRequestsInFlight,
			},
		),

		SentimentClassifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameSentimentClassifications,
				Help: HelpTextSentimentClassifications,
			},
			[]string{LabelSentiment},
		),
	}
}

// Registry returns the registry backing these metrics, for use with promhttp
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordClassification counts one classified text under its label
func (m *Metrics) RecordClassification(label domain.Label) {
	m.SentimentClassifications.WithLabelValues(label.String()).Inc()
}

// PoolStats is the read-only view of a worker pool exported as gauges
type PoolStats interface {
	Size() int
	QueueLen() int
}

// ObserveWorkerPool exports the pool's worker count and queue depth, read at scrape time
func (m *Metrics) ObserveWorkerPool(pool PoolStats) {
	factory := promauto.With(m.registry)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: MetricNameWorkerPoolWorkers,
			Help: HelpTextWorkerPoolWorkers,
		},
		func() float64 { return float64(pool.Size()) },
	)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: MetricNameWorkerQueueDepth,
			Help: HelpTextWorkerQueueDepth,
		},
		func() float64 { return float64(pool.QueueLen()) },
	)
}
