package model

import "time"

// Priority is the inferred urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskSource tags where a persisted task came from.
type TaskSource string

const (
	SourceVoice  TaskSource = "voice"
	SourceChat   TaskSource = "chat"
	SourceManual TaskSource = "manual"
)

// Task represents a task stored in Memos.
type Task struct {
	ID         string     // Memos internal ID (name field, e.g. "memos/123")
	UID        string     // Memos short UID
	Title      string     // Task title
	CategoryID string     // Category id from the catalog
	Priority   Priority   // Task priority
	Source     TaskSource // voice, chat or manual
	Due        *time.Time // Absolute due instant, nil when undated
	AllDay     bool       // Due carries a date only
	Content    string     // Full Markdown content
	Tags       []string   // Extracted tags
	MemoURL    string     // Deep link to the Memos web UI
	Visibility string     // "PRIVATE" or "PUBLIC"
	CreateTime string     // RFC3339 creation time string from Memos API
	UpdateTime string     // RFC3339 last updated time string from Memos API
}
