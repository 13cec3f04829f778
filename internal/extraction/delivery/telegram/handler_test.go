package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	extractionUC "task-capture/internal/extraction/usecase"
	"task-capture/internal/model"
	"task-capture/internal/review/repository/memory"
	reviewUC "task-capture/internal/review/usecase"
	"task-capture/internal/task/repository"
	"task-capture/pkg/datemath"
	pkgLog "task-capture/pkg/log"
	"task-capture/pkg/metrics"
	pkgTelegram "task-capture/pkg/telegram"
)

type stubWriter struct {
	got []model.Task
}

func (s *stubWriter) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	s.got = append(s.got, task)
	task.ID = "memos/1"
	task.MemoURL = "http://memos.local/m/1"
	return task, nil
}

type stubLister struct {
	tasks []model.Task
	opt   repository.ListTasksOptions
}

func (s *stubLister) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	s.opt = opt
	return s.tasks, nil
}

type testEnv struct {
	engine *gin.Engine
	writer *stubWriter
	lister *stubLister
	done   chan struct{}

	mu   sync.Mutex
	sent []string
}

func (e *testEnv) messages() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.sent...)
}

func newTestEnv(t *testing.T, secret string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		writer: &stubWriter{},
		lister: &stubLister{},
		done:   make(chan struct{}, 8),
	}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var payload pkgTelegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&payload)
			env.mu.Lock()
			env.sent = append(env.sent, payload.Text)
			env.mu.Unlock()
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	l := pkgLog.NewNop()
	m := metrics.New()

	h := New(l, Config{
		Extraction:  extractionUC.New(l, parser, m, extractionUC.Config{Timeout: time.Second, MinConfidence: extractionUC.DefaultMinConfidence}),
		Review:      reviewUC.New(l, memory.New(16, time.Hour), env.writer, nil, parser, m, nil),
		Tasks:       env.lister,
		Bot:         bot,
		SecretToken: secret,
	}).(*handler)
	h.wait = func() { env.done <- struct{}{} }

	env.engine = gin.New()
	env.engine.POST("/webhook/telegram", h.HandleWebhook)
	return env
}

// send posts one message update and waits for its background processing.
func (e *testEnv) send(t *testing.T, text string) *httptest.ResponseRecorder {
	t.Helper()
	w := e.post(t, pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456, Username: "alice"},
			Text:      text,
		},
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case <-e.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("message %q was not processed", text)
	}
	return w
}

func (e *testEnv) post(t *testing.T, update pkgTelegram.Update, secret string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(update)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(SecretTokenHeader, secret)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) last(t *testing.T) string {
	t.Helper()
	msgs := e.messages()
	require.NotEmpty(t, msgs)
	return msgs[len(msgs)-1]
}

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, "")

	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.post(t, pkgTelegram.Update{UpdateID: 1}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestHandleWebhook_SecretToken(t *testing.T) {
	env := newTestEnv(t, "s3cret")
	update := pkgTelegram.Update{UpdateID: 1}

	assert.Equal(t, http.StatusUnauthorized, env.post(t, update, "").Code)
	assert.Equal(t, http.StatusUnauthorized, env.post(t, update, "wrong").Code)
	assert.Equal(t, http.StatusOK, env.post(t, update, "s3cret").Code)
}

func TestStartAndHelp(t *testing.T) {
	env := newTestEnv(t, "")

	env.send(t, "/start")
	assert.Contains(t, env.last(t), "pick out the tasks")

	env.send(t, "/help@CaptureBot")
	assert.Contains(t, env.last(t), "/accept <n>")
}

func TestExtractThenAccept(t *testing.T) {
	env := newTestEnv(t, "")

	env.send(t, "Remind me to buy groceries tomorrow at 3 PM")
	reply := env.last(t)
	assert.Contains(t, reply, "Found 1 task(s)")
	assert.Contains(t, reply, "1. Buy groceries")
	assert.Contains(t, reply, "priority: medium")

	env.send(t, "/accept 1")
	reply = env.last(t)
	assert.Contains(t, reply, "Saved: Buy groceries")
	assert.Contains(t, reply, "http://memos.local/m/1")

	require.Len(t, env.writer.got, 1)
	task := env.writer.got[0]
	assert.Equal(t, model.SourceChat, task.Source)
	require.NotNil(t, task.Due)
	assert.Equal(t, 15, task.Due.Hour())

	// The emptied session is gone.
	env.send(t, "/list")
	assert.Contains(t, env.last(t), "Nothing to review")

	env.send(t, "/accept 1")
	assert.Contains(t, env.last(t), "Nothing to review")
	assert.Len(t, env.writer.got, 1)
}

func TestRemoveAndErrors(t *testing.T) {
	env := newTestEnv(t, "")

	env.send(t, "/accept 1")
	assert.Contains(t, env.last(t), "Nothing to review")

	env.send(t, "Remind me to buy groceries tomorrow at 3 PM")

	env.send(t, "/remove 5")
	assert.Contains(t, env.last(t), "There is no task #5")

	env.send(t, "/remove two")
	assert.Equal(t, "Usage: /remove <n>", env.last(t))

	env.send(t, "/remove 1")
	assert.Contains(t, env.last(t), "All tasks in this list are handled")
	assert.Empty(t, env.writer.got)
}

func TestNoTasksFound(t *testing.T) {
	env := newTestEnv(t, "")

	env.send(t, "thanks!")
	assert.Contains(t, env.last(t), "couldn't find any tasks")
}

func TestListTasks(t *testing.T) {
	env := newTestEnv(t, "")
	due := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	env.lister.tasks = []model.Task{
		{Title: "Pay rent", Due: &due, AllDay: true},
		{Title: "Call mom"},
	}

	env.send(t, "/tasks")
	reply := env.last(t)
	assert.Contains(t, reply, "1. Pay rent (due Fri May 31)")
	assert.Contains(t, reply, "2. Call mom")
	assert.Equal(t, repository.CaptureTag, env.lister.opt.Tag)
}

func TestFormatSessionNumbering(t *testing.T) {
	// Numbers are 1-based and map to index n-1.
	n, ok := parsePosition([]string{"#2"})
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = parsePosition([]string{"0"})
	assert.False(t, ok)
	_, ok = parsePosition(nil)
	assert.False(t, ok)
}
