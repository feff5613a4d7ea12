package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Request errors
	ErrMsgTextRequired = "text query parameter is required"

	// Worker errors
	ErrMsgPoolStopped = "worker pool stopped"
)

// Sentinel errors
var (
	ErrTextRequired = errors.New(ErrMsgTextRequired)
	ErrPoolStopped  = errors.New(ErrMsgPoolStopped)
)
