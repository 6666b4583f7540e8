package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrInvalidJSON  = errors.New("invalid JSON body")
	ErrBodyTooLarge = errors.New("request body too large")
	ErrBodyRead     = errors.New("request body could not be read")
	ErrNotReady     = errors.New("service not ready")
)
