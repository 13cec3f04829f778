package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
	"task-capture/internal/review"
	"task-capture/internal/task/repository"
	pkgResponse "task-capture/pkg/response"
	pkgTelegram "task-capture/pkg/telegram"
)

const (
	startText = "Hi! Forward or paste any message and I will pick out the tasks in it.\n\n" +
		"Reply /accept 1 to save the first one, /remove 2 to drop the second, /list to see what is left."

	helpText = "Commands:\n" +
		"/list - show the tasks waiting for review\n" +
		"/accept <n> - save task n\n" +
		"/remove <n> - drop task n\n" +
		"/tasks - show recently saved tasks\n\n" +
		"Anything else is scanned for tasks, e.g. \"Can you pick up milk tomorrow at 5pm?\""
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so Telegram never times out and retries.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (edits, polls, channel posts).
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		defer h.wait()
		// Detach from the request context, which ends with the response.
		bgCtx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		text = strings.TrimSpace(msg.Caption)
	}
	if text == "" {
		if msg.Voice != nil {
			return h.bot.SendMessage(ctx, chatID, "I can't listen to voice notes. Send me the transcript as text instead.")
		}
		return nil
	}

	// Review sessions belong to the chat so group members share one list.
	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", chatID),
		Username: msg.From.DisplayName(),
	}

	if strings.HasPrefix(text, "/") {
		return h.handleCommand(ctx, sc, chatID, text)
	}
	return h.handleContent(ctx, sc, msg, text)
}

func (h *handler) handleCommand(ctx context.Context, sc model.Scope, chatID int64, text string) error {
	fields := strings.Fields(text)
	// Commands in groups arrive as /accept@BotName.
	cmd, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	switch cmd {
	case "/start":
		return h.bot.SendMessage(ctx, chatID, startText)
	case "/help":
		return h.bot.SendMessage(ctx, chatID, helpText)
	case "/list":
		sess, err := h.review.Latest(ctx, sc)
		if err != nil {
			return h.replyError(ctx, chatID, err, 0)
		}
		return h.bot.SendMessage(ctx, chatID, formatSession(sess))
	case "/accept":
		n, ok := parsePosition(args)
		if !ok {
			return h.bot.SendMessage(ctx, chatID, "Usage: /accept <n>")
		}
		return h.accept(ctx, sc, chatID, n)
	case "/remove":
		n, ok := parsePosition(args)
		if !ok {
			return h.bot.SendMessage(ctx, chatID, "Usage: /remove <n>")
		}
		return h.remove(ctx, sc, chatID, n)
	case "/tasks":
		return h.listTasks(ctx, chatID)
	default:
		return h.bot.SendMessage(ctx, chatID, "Unknown command. Send /help for the list.")
	}
}

// handleContent scans shared content and opens a review session.
func (h *handler) handleContent(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message, text string) error {
	content := model.SharedContent{
		Text:       text,
		AppName:    "telegram",
		SenderInfo: msg.From.DisplayName(),
	}
	if msg.ForwardOrigin != nil {
		content.SenderInfo = msg.ForwardOrigin.DisplayName()
	}

	out, err := h.uc.Extract(ctx, sc, extraction.ExtractInput{Content: content})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Extract failed: %v", err)
		return h.replyError(ctx, msg.Chat.ID, err, 0)
	}
	if len(out.Candidates) == 0 {
		return h.bot.SendMessage(ctx, msg.Chat.ID, "I couldn't find any tasks in that message.")
	}

	sess, err := h.review.Open(ctx, sc, review.OpenInput{
		Source:     model.SourceChat,
		Candidates: out.Candidates,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Open failed: %v", err)
		return h.replyError(ctx, msg.Chat.ID, err, 0)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, formatSession(sess))
}

func (h *handler) accept(ctx context.Context, sc model.Scope, chatID int64, n int) error {
	sess, err := h.review.Latest(ctx, sc)
	if err != nil {
		return h.replyError(ctx, chatID, err, n)
	}

	out, err := h.review.Accept(ctx, sc, review.AcceptInput{SessionID: sess.ID, Index: n - 1})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Accept failed: %v", err)
		return h.replyError(ctx, chatID, err, n)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Saved: %s", out.Task.Title)
	if out.Task.MemoURL != "" {
		fmt.Fprintf(&sb, "\n%s", out.Task.MemoURL)
	}
	if out.Scheduled {
		sb.WriteString("\nReminder scheduled.")
	}
	if len(out.Session.Candidates) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(formatSession(out.Session))
	}
	return h.bot.SendMessage(ctx, chatID, sb.String())
}

func (h *handler) remove(ctx context.Context, sc model.Scope, chatID int64, n int) error {
	sess, err := h.review.Latest(ctx, sc)
	if err != nil {
		return h.replyError(ctx, chatID, err, n)
	}

	sess, err = h.review.Remove(ctx, sc, review.RemoveInput{SessionID: sess.ID, Index: n - 1})
	if err != nil {
		return h.replyError(ctx, chatID, err, n)
	}
	return h.bot.SendMessage(ctx, chatID, formatSession(sess))
}

func (h *handler) listTasks(ctx context.Context, chatID int64) error {
	if h.tasks == nil {
		return h.bot.SendMessage(ctx, chatID, "The task store is not configured.")
	}

	tasks, err := h.tasks.ListTasks(ctx, repository.ListTasksOptions{Tag: repository.CaptureTag, Limit: 10})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: ListTasks failed: %v", err)
		return h.replyError(ctx, chatID, err, 0)
	}
	if len(tasks) == 0 {
		return h.bot.SendMessage(ctx, chatID, "No saved tasks yet.")
	}

	var sb strings.Builder
	sb.WriteString("Recently saved tasks:\n")
	for i, t := range tasks {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, t.Title)
		if t.Due != nil {
			if t.AllDay {
				fmt.Fprintf(&sb, " (due %s)", t.Due.Format("Mon Jan 2"))
			} else {
				fmt.Fprintf(&sb, " (due %s)", t.Due.Format("Mon Jan 2 15:04"))
			}
		}
	}
	return h.bot.SendMessage(ctx, chatID, sb.String())
}

func (h *handler) replyError(ctx context.Context, chatID int64, err error, n int) error {
	return h.bot.SendMessage(ctx, chatID, errorMessage(err, n))
}

// parsePosition reads the 1-based task number of a command.
func parsePosition(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// formatSession renders the candidates as a numbered list.
func formatSession(sess review.Session) string {
	if len(sess.Candidates) == 0 {
		return "All tasks in this list are handled."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d task(s):\n", len(sess.Candidates))
	for i, c := range sess.Candidates {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, c.Title)
		if c.Date != nil {
			fmt.Fprintf(&sb, "\n   when: %s", c.Date)
			if c.Time != nil {
				fmt.Fprintf(&sb, " %s", c.Time)
			}
		}
		if c.SuggestedCategory != "" {
			fmt.Fprintf(&sb, "\n   category: %s", c.SuggestedCategory)
		}
		fmt.Fprintf(&sb, "\n   priority: %s", c.InferredPriority)
	}
	sb.WriteString("\n\nReply /accept <n> to save or /remove <n> to drop.")
	return sb.String()
}
