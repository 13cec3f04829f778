package memos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-capture/internal/model"
	"task-capture/internal/task/repository"
	"task-capture/pkg/breaker"
	pkgLog "task-capture/pkg/log"
)

const (
	dueLayout    = "2006-01-02 15:04"
	dueDayLayout = "2006-01-02"
)

type implRepository struct {
	client      *Client
	breaker     *breaker.Breaker
	memoBaseURL string // e.g. "http://localhost:5230" for deep link generation
	location    *time.Location
	l           pkgLog.Logger
}

// New creates a new Memos repository. Every remote call goes through b.
func New(client *Client, b *breaker.Breaker, memoBaseURL string, loc *time.Location, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client:      client,
		breaker:     b,
		memoBaseURL: strings.TrimRight(memoBaseURL, "/"),
		location:    loc,
		l:           l,
	}
}

var _ repository.MemosRepository = (*implRepository)(nil)

func (r *implRepository) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	visibility := task.Visibility
	if visibility == "" {
		visibility = "PRIVATE"
	}

	req := CreateMemoRequest{
		Content:    r.buildMarkdownContent(task),
		Visibility: visibility,
	}

	memo, err := breaker.Execute(r.breaker, func() (*Memo, error) {
		return r.client.CreateMemo(ctx, req)
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to create memo: %v", err)
		return model.Task{}, err
	}

	return r.memoToTask(memo), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = 20
	}
	tag := opt.Tag
	if tag == "" {
		tag = repository.CaptureTag
	}

	memos, err := breaker.Execute(r.breaker, func() ([]Memo, error) {
		return r.client.ListMemos(ctx, tag, limit)
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to list memos: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(memos))
	for _, m := range memos {
		tasks = append(tasks, r.memoToTask(&m))
	}
	return tasks, nil
}

// buildMarkdownContent renders a task as a Memos body: a heading, a field
// list and a tag line Memos indexes.
func (r *implRepository) buildMarkdownContent(task model.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", task.Title)

	if task.Due != nil {
		due := task.Due.In(r.location)
		if task.AllDay {
			fmt.Fprintf(&sb, "- Due: %s\n", due.Format(dueDayLayout))
		} else {
			fmt.Fprintf(&sb, "- Due: %s\n", due.Format(dueLayout))
		}
	}
	if task.Priority != "" {
		fmt.Fprintf(&sb, "- Priority: %s\n", task.Priority)
	}
	if task.CategoryID != "" {
		fmt.Fprintf(&sb, "- Category: %s\n", task.CategoryID)
	}
	if task.Source != "" {
		fmt.Fprintf(&sb, "- Source: %s\n", task.Source)
	}
	if task.Content != "" {
		fmt.Fprintf(&sb, "\n%s\n", task.Content)
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Join(taskTags(task), " "))
	return sb.String()
}

func taskTags(task model.Task) []string {
	tags := []string{repository.CaptureTag}
	if task.CategoryID != "" {
		tags = append(tags, "#category/"+task.CategoryID)
	}
	if task.Priority != "" {
		tags = append(tags, "#priority/"+string(task.Priority))
	}
	return append(tags, task.Tags...)
}

// memoToTask converts a Memos API Memo object to the internal model.Task.
func (r *implRepository) memoToTask(m *Memo) model.Task {
	uid := m.UID
	// Name format is "memos/{uid}" from the Memos v1 API
	if uid == "" && m.Name != "" {
		parts := strings.SplitN(m.Name, "/", 2)
		if len(parts) == 2 {
			uid = parts[1]
		}
	}

	memoURL := ""
	if uid != "" && r.memoBaseURL != "" {
		memoURL = fmt.Sprintf("%s/m/%s", r.memoBaseURL, uid)
	}

	task := model.Task{
		ID:         m.Name,
		UID:        uid,
		Content:    m.Content,
		MemoURL:    memoURL,
		Visibility: m.Visibility,
		CreateTime: m.CreateTime,
		UpdateTime: m.UpdateTime,
	}
	r.parseContent(&task)
	return task
}

// parseContent recovers the fields buildMarkdownContent wrote.
func (r *implRepository) parseContent(task *model.Task) {
	for _, line := range strings.Split(task.Content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "# ") && task.Title == "":
			task.Title = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "- Due: "):
			v := strings.TrimPrefix(line, "- Due: ")
			if due, err := time.ParseInLocation(dueLayout, v, r.location); err == nil {
				task.Due = &due
			} else if due, err := time.ParseInLocation(dueDayLayout, v, r.location); err == nil {
				task.Due, task.AllDay = &due, true
			}
		case strings.HasPrefix(line, "- Priority: "):
			task.Priority = model.Priority(strings.TrimPrefix(line, "- Priority: "))
		case strings.HasPrefix(line, "- Category: "):
			task.CategoryID = strings.TrimPrefix(line, "- Category: ")
		case strings.HasPrefix(line, "- Source: "):
			task.Source = model.TaskSource(strings.TrimPrefix(line, "- Source: "))
		case strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "# "):
			task.Tags = append(task.Tags, strings.Fields(line)...)
		}
	}
}
