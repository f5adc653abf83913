package journal

import "errors"

// Sentinel errors for journal operations.
var (
	ErrStreamRequired = errors.New("stream is required")
	ErrAppendFailed   = errors.New("append failed")
	ErrReplayFailed   = errors.New("replay failed")
)
