package handler

// Response bodies for the plain-text endpoints and error paths.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	MsgOK                     = "OK"
	ErrMsgMethodNotAllowed    = "Method Not Allowed"
	ErrMsgNotFound            = "Not Found"
	ErrMsgServiceUnavailable  = "Service Unavailable"
	ErrMsgInternalServerError = "Internal Server Error"
)

// Content types
const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeJSON = "application/json; charset=utf-8"
)

// Header names and values
const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderAllow         = "Allow"
	AllowedMethods      = "GET"
)

// QueryParamText is the query parameter holding the text to classify
const QueryParamText = "text"

// Log messages
const (
	LogMsgMissingTextParam = "Missing text query parameter"
	LogMsgTextClassified   = "Text classified"
	LogMsgWriteFailed      = "Failed to write response"
	LogMsgMetricsFailed    = "Failed to render metrics"
	LogMsgReadinessFailed  = "Readiness check failed"
)
