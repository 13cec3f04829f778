package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-capture/internal/extraction"
	"task-capture/internal/middleware"
	"task-capture/internal/model"
	"task-capture/internal/review"
	reviewHTTP "task-capture/internal/review/delivery/http"
	"task-capture/internal/review/repository/memory"
	reviewUC "task-capture/internal/review/usecase"
	"task-capture/pkg/breaker"
	"task-capture/pkg/datemath"
	pkgLog "task-capture/pkg/log"
	"task-capture/pkg/metrics"
)

type stubWriter struct {
	err error
}

func (s *stubWriter) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	if s.err != nil {
		return model.Task{}, s.err
	}
	task.ID = "memos/7"
	task.MemoURL = "http://memos.local/m/7"
	return task, nil
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type sessionBody struct {
	ID         string `json:"id"`
	Candidates []struct {
		Index            int    `json:"index"`
		Title            string `json:"title"`
		Date             string `json:"date"`
		InferredPriority string `json:"inferred_priority"`
		Strategy         string `json:"strategy"`
	} `json:"candidates"`
}

func setup(t *testing.T, writer review.TaskWriter) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	uc := reviewUC.New(pkgLog.NewNop(), memory.New(16, time.Hour), writer, nil, parser, metrics.New(), nil)

	friday := datemath.Date{Year: 2024, Month: time.May, Day: 3}
	sess, err := uc.Open(context.Background(), model.Scope{UserID: "u-1"}, review.OpenInput{
		Source: model.SourceChat,
		Candidates: []extraction.Candidate{
			{Title: "Doctor appointment", Date: &friday, Confidence: 0.95, InferredPriority: model.PriorityMedium, Keywords: []string{"appointment"}, Strategy: "appointment"},
			{Title: "Buy milk", Confidence: 0.8, InferredPriority: model.PriorityMedium, Keywords: []string{}, Strategy: "shopping_list"},
		},
	})
	require.NoError(t, err)

	r := gin.New()
	reviewHTTP.RegisterRoutes(r.Group("/api/v1"), reviewHTTP.New(pkgLog.NewNop(), uc), middleware.New(pkgLog.NewNop(), middleware.Config{}))
	return r, sess.ID
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestDetail(t *testing.T) {
	r, id := setup(t, &stubWriter{})

	code, env := do(t, r, http.MethodGet, "/api/v1/reviews/"+id, nil)
	require.Equal(t, http.StatusOK, code)

	var sess sessionBody
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, id, sess.ID)
	require.Len(t, sess.Candidates, 2)
	assert.Equal(t, 1, sess.Candidates[1].Index)
	assert.Equal(t, "2024-05-03", sess.Candidates[0].Date)

	code, _ = do(t, r, http.MethodGet, "/api/v1/reviews/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestForeignCallerSeesNotFound(t *testing.T) {
	r, id := setup(t, &stubWriter{})

	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/v1/reviews/" + id, nil},
		{http.MethodPut, fmt.Sprintf("/api/v1/reviews/%s/candidates/0", id), map[string]any{"title": "Hijacked"}},
		{http.MethodDelete, fmt.Sprintf("/api/v1/reviews/%s/candidates/0", id), nil},
		{http.MethodPost, fmt.Sprintf("/api/v1/reviews/%s/candidates/0/accept", id), nil},
	} {
		var buf bytes.Buffer
		if tc.body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(tc.body))
		}
		req := httptest.NewRequest(tc.method, tc.path, &buf)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderUserID, "u-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.method+" "+tc.path)
	}

	code, env := do(t, r, http.MethodGet, "/api/v1/reviews/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	var sess sessionBody
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	require.Len(t, sess.Candidates, 2)
	assert.Equal(t, "Doctor appointment", sess.Candidates[0].Title)
}

func TestEdit(t *testing.T) {
	r, id := setup(t, &stubWriter{})
	path := fmt.Sprintf("/api/v1/reviews/%s/candidates/1", id)

	code, env := do(t, r, http.MethodPut, path, map[string]any{
		"title":             "Buy oat milk",
		"date":              "2024-05-04",
		"confidence":        1.7,
		"inferred_priority": "high",
	})
	require.Equal(t, http.StatusOK, code)

	var sess sessionBody
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, "Buy oat milk", sess.Candidates[1].Title)
	assert.Equal(t, "2024-05-04", sess.Candidates[1].Date)
	assert.Equal(t, "high", sess.Candidates[1].InferredPriority)
	// Provenance of the edited candidate is kept.
	assert.Equal(t, "shopping_list", sess.Candidates[1].Strategy)

	tests := []struct {
		name string
		path string
		body map[string]any
		code int
	}{
		{name: "blank title", path: path, body: map[string]any{"title": "   "}, code: http.StatusBadRequest},
		{name: "missing title", path: path, body: map[string]any{}, code: http.StatusBadRequest},
		{name: "bad priority", path: path, body: map[string]any{"title": "x", "inferred_priority": "asap"}, code: http.StatusBadRequest},
		{name: "bad index", path: fmt.Sprintf("/api/v1/reviews/%s/candidates/abc", id), body: map[string]any{"title": "x"}, code: http.StatusBadRequest},
		{name: "index out of range", path: fmt.Sprintf("/api/v1/reviews/%s/candidates/9", id), body: map[string]any{"title": "x"}, code: http.StatusNotFound},
		{name: "unknown session", path: "/api/v1/reviews/nope/candidates/0", body: map[string]any{"title": "x"}, code: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := do(t, r, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestRemove(t *testing.T) {
	r, id := setup(t, &stubWriter{})

	code, env := do(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/reviews/%s/candidates/0", id), nil)
	require.Equal(t, http.StatusOK, code)

	var sess sessionBody
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	require.Len(t, sess.Candidates, 1)
	assert.Equal(t, "Buy milk", sess.Candidates[0].Title)
	assert.Equal(t, 0, sess.Candidates[0].Index)

	code, _ = do(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/reviews/%s/candidates/-1", id), nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAccept(t *testing.T) {
	r, id := setup(t, &stubWriter{})

	code, env := do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/reviews/%s/candidates/0/accept", id), nil)
	require.Equal(t, http.StatusOK, code)

	var out struct {
		Task struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			AllDay bool   `json:"all_day"`
			URL    string `json:"url"`
		} `json:"task"`
		Scheduled bool        `json:"scheduled"`
		Session   sessionBody `json:"session"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "memos/7", out.Task.ID)
	assert.Equal(t, "Doctor appointment", out.Task.Title)
	assert.True(t, out.Task.AllDay)
	assert.False(t, out.Scheduled)
	assert.Len(t, out.Session.Candidates, 1)
}

func TestAcceptStoreUnavailable(t *testing.T) {
	r, id := setup(t, &stubWriter{err: fmt.Errorf("memos: %w", breaker.ErrOpen)})

	code, _ := do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/reviews/%s/candidates/0/accept", id), nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)

	// The candidate stays in the session for a retry.
	code, env := do(t, r, http.MethodGet, "/api/v1/reviews/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	var sess sessionBody
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Len(t, sess.Candidates, 2)
}
