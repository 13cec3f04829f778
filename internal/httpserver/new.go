package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"task-capture/internal/extraction"
	tgDelivery "task-capture/internal/extraction/delivery/telegram"
	"task-capture/internal/middleware"
	"task-capture/internal/review"
	"task-capture/pkg/log"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	extractionUC    extraction.UseCase
	reviewUC        review.UseCase
	telegramHandler tgDelivery.Handler

	readiness map[string]ReadinessCheck
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.Config

	ExtractionUC extraction.UseCase
	// ReviewUC may be nil, which disables the review endpoints.
	ReviewUC review.UseCase
	// TelegramHandler may be nil when no bot token is configured.
	TelegramHandler tgDelivery.Handler

	// Readiness is keyed by dependency name, e.g. "redis".
	Readiness map[string]ReadinessCheck
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, cfg.RateLimit),
		extractionUC:    cfg.ExtractionUC,
		reviewUC:        cfg.ReviewUC,
		telegramHandler: cfg.TelegramHandler,
		readiness:       cfg.Readiness,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractionUC == nil {
		return errors.New("extraction use case is required")
	}
	return nil
}
