package review

import (
	"time"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
)

// Session is the ordered candidate list one extraction produced, waiting
// for the user to accept, edit or drop each entry.
type Session struct {
	ID         string                 `json:"id"`
	UserID     string                 `json:"user_id"`
	Source     model.TaskSource       `json:"source"`
	Candidates []extraction.Candidate `json:"candidates"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// OpenInput is the input for opening a review session.
type OpenInput struct {
	Source     model.TaskSource
	Candidates []extraction.Candidate
}

// EditInput replaces the candidate at Index.
type EditInput struct {
	SessionID string
	Index     int
	Candidate extraction.Candidate
}

// RemoveInput drops the candidate at Index.
type RemoveInput struct {
	SessionID string
	Index     int
}

// AcceptInput turns the candidate at Index into a task.
type AcceptInput struct {
	SessionID string
	Index     int
}

// AcceptOutput is the stored task and the session without the accepted
// candidate.
type AcceptOutput struct {
	Task      model.Task
	Session   Session
	Scheduled bool
}

// Reminder is a persisted task with a due time handed to the scheduler.
type Reminder struct {
	Task    model.Task
	Start   time.Time
	AllDay  bool
	Minutes []int
}
