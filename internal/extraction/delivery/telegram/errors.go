package telegram

import (
	"errors"
	"fmt"

	"task-capture/internal/extraction"
	"task-capture/internal/review"
	"task-capture/pkg/breaker"
)

// errorMessage returns a user-facing reply for the given error.
func errorMessage(err error, n int) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, review.ErrSessionNotFound):
		return "Nothing to review. Send me a message with some tasks first."
	case errors.Is(err, review.ErrIndexOutOfRange):
		return fmt.Sprintf("There is no task #%d in the current list.", n)
	case errors.Is(err, extraction.ErrInputTooLong):
		return "That message is too long for me to scan. Try sending it in parts."
	case errors.Is(err, extraction.ErrBudgetExpired):
		return "That took too long to scan. Please try again."
	case errors.Is(err, breaker.ErrOpen):
		return "The task store is unavailable right now. Please try again in a minute."
	default:
		return "Something went wrong while processing your request. Please try again."
	}
}
