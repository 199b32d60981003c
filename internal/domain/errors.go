package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes via a single mapError function.
var (
	ErrNotReady    = errors.New("one or more dependencies are unavailable")
	ErrRateLimited = errors.New("rate limit exceeded")
)
