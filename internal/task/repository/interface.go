package repository

import (
	"context"

	"task-capture/internal/model"
)

// MemosRepository is the interface for Memos data access operations.
type MemosRepository interface {
	// CreateTask stores an accepted task and returns it with its Memos ids.
	CreateTask(ctx context.Context, task model.Task) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
