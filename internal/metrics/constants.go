package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSentimentRequests        = "sentiment_requests_total"
	MetricNameSentimentClassifications = "sentiment_classifications_total"
)

// Worker pool metric names
const (
	MetricNameWorkerPoolWorkers = "worker_pool_workers"
	MetricNameWorkerQueueDepth  = "worker_queue_depth"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSentimentRequests        = "Total requests handled (mock)"
	HelpTextSentimentClassifications = "Total number of texts classified, by resulting sentiment"
)

// Worker pool metric help text
const (
	HelpTextWorkerPoolWorkers = "Number of workers in the request pool"
	HelpTextWorkerQueueDepth  = "Number of requests waiting for a worker"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelSentiment = "sentiment"
)

// PathUnmatched labels requests that matched no route, keeping path cardinality bounded
const PathUnmatched = "unmatched"

// ============================================================================
// Exposition
// ============================================================================

// ContentTypeExposition is the content type of the Prometheus text format
const ContentTypeExposition = "text/plain; version=0.0.4; charset=utf-8"

// StaticRequestCount is the fixed value reported for sentiment_requests_total on the public endpoint
const StaticRequestCount = 1

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
