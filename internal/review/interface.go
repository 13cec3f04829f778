package review

import (
	"context"

	"task-capture/internal/model"
)

// UseCase defines the business logic interface for review sessions.
type UseCase interface {
	Open(ctx context.Context, sc model.Scope, input OpenInput) (Session, error)
	Get(ctx context.Context, sc model.Scope, id string) (Session, error)
	// Latest returns the most recent session opened for the scope's user.
	Latest(ctx context.Context, sc model.Scope) (Session, error)
	Edit(ctx context.Context, sc model.Scope, input EditInput) (Session, error)
	Remove(ctx context.Context, sc model.Scope, input RemoveInput) (Session, error)
	Accept(ctx context.Context, sc model.Scope, input AcceptInput) (AcceptOutput, error)
}

// TaskWriter persists finalized tasks. The review flow never writes storage
// directly.
type TaskWriter interface {
	CreateTask(ctx context.Context, task model.Task) (model.Task, error)
}

// ReminderScheduler schedules notifications for a persisted task.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, r Reminder) error
}
