package review

import "errors"

// Domain-specific errors for the review package.
var (
	ErrSessionNotFound  = errors.New("review session not found")
	ErrIndexOutOfRange  = errors.New("candidate index out of range")
	ErrInvalidCandidate = errors.New("candidate title must not be empty")
	ErrEmptySession     = errors.New("review session has no candidates")
)
