package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting      = "Server starting"
	LogMsgAdminServerStarting = "Internal metrics server starting"
	LogMsgRequestStarted      = "Request started"
	LogMsgRequestCompleted    = "Request completed"
	LogMsgRequestHeaders      = "Request headers"
	LogMsgPoolRejected        = "Worker pool rejected request"
	LogMsgClientGone          = "Client went away before request was scheduled"
)

// HTTP header names
const (
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff            = "nosniff"
	HeaderValueDeny               = "DENY"
	HeaderValueReferrerNoReferrer = "no-referrer"
)

// Route paths
const (
	PathHealth    = "/health"
	PathSentiment = "/api/sentiment"
	PathMetrics   = "/metrics"
	PathReadyz    = "/readyz"
	PathVersion   = "/version"
)

// ServedPaths are the public route prefixes
var ServedPaths = []string{
	PathHealth,
	PathSentiment,
	PathMetrics,
}

// QuietPaths are probed frequently and are not logged per request
var QuietPaths = []string{
	PathHealth,
	PathMetrics,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// SensitiveHeaders never appear in logs
var SensitiveHeaders = []string{
	"Authorization",
	"Cookie",
	"X-API-Key",
}

// Server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	IdleTimeout       = 60 * time.Second
)
