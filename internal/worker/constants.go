package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed     = "Worker job failed"
	LogMsgWorkerJobPanicked   = "Worker job panicked"
	LogMsgPoolStarted         = "Worker pool started"
	LogMsgPoolShuttingDown    = "Shutting down worker pool"
	LogMsgPoolShutdownDone    = "Worker pool shutdown complete"
	LogMsgPoolShutdownTimeout = "Worker pool shutdown timeout"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
