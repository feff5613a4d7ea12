package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// StaticCollector reports sentiment_requests_total as a constant.
// The public /metrics endpoint serves only this collector.
type StaticCollector struct {
	desc  *prometheus.Desc
	value float64
}

// NewStaticCollector creates the collector behind the public /metrics body
func NewStaticCollector() *StaticCollector {
	return &StaticCollector{
		desc:  prometheus.NewDesc(MetricNameSentimentRequests, HelpTextSentimentRequests, nil, nil),
		value: StaticRequestCount,
	}
}

// Describe implements prometheus.Collector
func (c *StaticCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector
func (c *StaticCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.CounterValue, c.value)
}

// NewExpositionRegistry returns a registry holding only the static collector
func NewExpositionRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewStaticCollector())
	return reg
}

// WriteText gathers g and writes every family in the Prometheus text format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
