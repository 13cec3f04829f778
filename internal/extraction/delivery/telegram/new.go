package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
	"task-capture/internal/review"
	"task-capture/internal/task/repository"
	pkgLog "task-capture/pkg/log"
	pkgTelegram "task-capture/pkg/telegram"
)

// SecretTokenHeader carries the secret registered with setWebhook.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// processTimeout bounds the background work done for one update.
const processTimeout = 30 * time.Second

// Handler handles Telegram webhook updates.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// TaskLister lists tasks already stored by the service.
type TaskLister interface {
	ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error)
}

// Config holds the collaborators of the Telegram handler. Tasks may be nil,
// which disables /tasks.
type Config struct {
	Extraction  extraction.UseCase
	Review      review.UseCase
	Tasks       TaskLister
	Bot         *pkgTelegram.Bot
	SecretToken string
}

type handler struct {
	l           pkgLog.Logger
	uc          extraction.UseCase
	review      review.UseCase
	tasks       TaskLister
	bot         *pkgTelegram.Bot
	secretToken string

	// wait is called when background processing of an update ends.
	wait func()
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, cfg Config) Handler {
	return &handler{
		l:           l,
		uc:          cfg.Extraction,
		review:      cfg.Review,
		tasks:       cfg.Tasks,
		bot:         cfg.Bot,
		secretToken: cfg.SecretToken,
		wait:        func() {},
	}
}
