package bootstrap

// =============================================================================
// Startup Messages
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting sentiment service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgMetricsListenerOff  = "Internal metrics listener disabled"
	LogMsgServerFailed        = "Server failed"
	LogMsgShutdownSignal      = "Shutdown signal received"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer      = "Shutting down server..."
	LogMsgShuttingDownAdminServer = "Shutting down internal metrics server..."
	LogMsgDrainingWorkerPool      = "Draining worker pool..."
	LogMsgServerStopped           = "Server stopped"
	LogMsgServerForcedShutdown    = "Server forced to shutdown"
	LogMsgAdminServerShutdown     = "Internal metrics server shutdown failed"
	LogMsgWorkerPoolShutdown      = "Worker pool shutdown failed"
)
