package http

import (
	"task-capture/internal/extraction"
	"task-capture/internal/review"
	pkgLog "task-capture/pkg/log"
)

type handler struct {
	l      pkgLog.Logger
	uc     extraction.UseCase
	review review.UseCase
}

// New creates a new HTTP handler for the extraction domain. review may be nil,
// in which case extracted candidates are returned without a review session.
func New(l pkgLog.Logger, uc extraction.UseCase, reviewUC review.UseCase) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		review: reviewUC,
	}
}
