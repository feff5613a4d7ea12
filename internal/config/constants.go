package config

import "time"

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvMetricsPort     = "METRICS_PORT"
	EnvWorkerPoolSize  = "WORKER_POOL_SIZE"
	EnvWorkerQueueSize = "WORKER_QUEUE_SIZE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Default values
const (
	DefaultPort            = 8080
	DefaultMetricsPort     = 0 // disabled
	DefaultWorkerPoolSize  = 8
	DefaultWorkerQueueSize = 64
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "sentiment-service"
	DefaultVersion         = "dev"
	DefaultShutdownTimeout = 10 * time.Second
)
