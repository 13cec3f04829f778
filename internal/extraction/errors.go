package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	ErrEmptyInput    = errors.New("input text is empty")
	ErrInputTooLong  = errors.New("input text is too long")
	ErrBudgetExpired = errors.New("extraction exceeded its time budget")
)
