package submission

import "errors"

// Sentinel errors for the submission gateway.
var (
	ErrNotAvailable = errors.New("actor not available")
	ErrNotFound     = errors.New("submission not found")
)
