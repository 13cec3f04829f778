package http

import (
	"task-capture/internal/review"
	pkgLog "task-capture/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc review.UseCase
}

// New creates a new HTTP handler for review sessions.
func New(l pkgLog.Logger, uc review.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
