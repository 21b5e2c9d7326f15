package frame

import "errors"

// Configuration errors. All of them are reported before any simulation state is built, so a failed run
// never produces a partial result.
var (
	ErrInvalidFrameCount   = errors.New("invalid frame count")
	ErrUnknownPolicy       = errors.New("unknown replacement policy")
	ErrSequenceUnavailable = errors.New("reference sequence unavailable")
)
