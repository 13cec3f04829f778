package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"task-capture/config"
	_ "task-capture/docs" // Swagger docs
	"task-capture/internal/extraction"
	tgDelivery "task-capture/internal/extraction/delivery/telegram"
	extractionUC "task-capture/internal/extraction/usecase"
	"task-capture/internal/httpserver"
	"task-capture/internal/middleware"
	"task-capture/internal/review"
	reviewRepo "task-capture/internal/review/repository"
	memoryStore "task-capture/internal/review/repository/memory"
	redisStore "task-capture/internal/review/repository/redis"
	"task-capture/internal/review/scheduler"
	reviewUC "task-capture/internal/review/usecase"
	memosRepo "task-capture/internal/task/repository/memos"
	"task-capture/pkg/breaker"
	"task-capture/pkg/datemath"
	"task-capture/pkg/gcalendar"
	"task-capture/pkg/log"
	"task-capture/pkg/metrics"
	"task-capture/pkg/telegram"
)

// @title       Task Capture API
// @description Turns voice transcripts and shared chat messages into reviewable task candidates.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Capture...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	m := metrics.New()

	// DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 3. Extraction domain
	var catalog extraction.CategoryCatalog
	if len(cfg.Extraction.Categories) > 0 {
		catalog = extraction.StaticCatalog(cfg.Extraction.Categories)
	}
	extractUC := extractionUC.New(logger, dateMathParser, m, extractionUC.Config{
		Timeout:       cfg.Extraction.Timeout,
		MinConfidence: cfg.Extraction.MinConfidence,
		MaxInputChars: cfg.Extraction.MaxInputChars,
		CacheSize:     cfg.Extraction.CacheSize,
		CacheTTL:      cfg.Extraction.CacheTTL,
		Catalog:       catalog,
	})

	breakerCfg := breaker.Config{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		Timeout:          cfg.Breaker.Timeout,
		Interval:         cfg.Breaker.Interval,
	}
	readiness := map[string]httpserver.ReadinessCheck{}

	// 4. Review domain: needs a task store to accept into
	var (
		reviewUseCase review.UseCase
		taskRepo      tgDelivery.TaskLister
	)
	if cfg.Memos.URL != "" && cfg.Memos.AccessToken != "" {
		memosClient := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken, cfg.Memos.Timeout)
		repo := memosRepo.New(memosClient, breaker.New("memos", breakerCfg, logger, m), cfg.Memos.ExternalURL, dateMathParser.Location(), logger)
		taskRepo = repo

		store, closeStore, storeErr := newSessionStore(ctx, cfg, readiness)
		if storeErr != nil {
			logger.Errorf(ctx, "Failed to initialize review store: %v", storeErr)
			return
		}
		defer closeStore()

		// Google Calendar client (optional)
		var reminders review.ReminderScheduler
		if cfg.GoogleCalendar.CredentialsPath != "" {
			calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
			if calErr != nil {
				logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
				logger.Warnf(ctx, "Run `capture gcal-auth --token %s` to authorize the calendar", cfg.GoogleCalendar.TokenPath)
			} else {
				reminders = scheduler.NewCalendar(logger, calendarClient, breaker.New("gcalendar", breakerCfg, logger, m),
					cfg.GoogleCalendar.CalendarID, dateMathParser.Location().String())
				logger.Info(ctx, "Google Calendar reminders enabled")
			}
		}

		reviewUseCase = reviewUC.New(logger, store, repo, reminders, dateMathParser, m, cfg.Review.ReminderMinutes)
	} else {
		logger.Warn(ctx, "Review skipped: memos.url or memos.access_token is missing")
	}

	// 5. Telegram chat path
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" && reviewUseCase != nil {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, tgDelivery.Config{
			Extraction:  extractUC,
			Review:      reviewUseCase,
			Tasks:       taskRepo,
			Bot:         bot,
			SecretToken: cfg.Telegram.SecretToken,
		})
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is missing or review is disabled")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
			MaxClients:     cfg.RateLimit.MaxClients,
		},
		ExtractionUC:    extractUC,
		ReviewUC:        reviewUseCase,
		TelegramHandler: telegramHandler,
		Readiness:       readiness,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newSessionStore builds the configured review session store.
func newSessionStore(ctx context.Context, cfg *config.Config, readiness map[string]httpserver.ReadinessCheck) (reviewRepo.Store, func(), error) {
	if cfg.Review.Store != config.StoreRedis {
		return memoryStore.New(cfg.Review.MaxSessions, cfg.Review.TTL), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}
	readiness["redis"] = func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
	return redisStore.New(client, cfg.Review.TTL), func() { client.Close() }, nil
}

// registerWebhook points Telegram at this service, discovering the public
// URL through ngrok when none is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI, ngrokBackoff)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL not configured, updates will not arrive")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
