package http

import (
	"errors"
	"net/http"

	"task-capture/internal/extraction"
	pkgErrors "task-capture/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, extraction.ErrInputTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, extraction.ErrBudgetExpired):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
