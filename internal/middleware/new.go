package middleware

import (
	pkgLog "task-capture/pkg/log"
)

// Config tunes the per-client rate limiter. A zero RequestsPerMin disables it.
type Config struct {
	RequestsPerMin int
	Burst          int
	MaxClients     int
}

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}
