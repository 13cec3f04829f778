package http

import (
	"errors"
	"net/http"

	"task-capture/internal/review"
	"task-capture/pkg/breaker"
	pkgErrors "task-capture/pkg/errors"
)

var errInvalidIndex = errors.New("index must be a non-negative integer")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, review.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, review.ErrIndexOutOfRange):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, review.ErrInvalidCandidate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, breaker.ErrOpen):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "task store unavailable, try again later")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
