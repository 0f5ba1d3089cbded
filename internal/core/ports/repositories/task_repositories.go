package repositories

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// TaskReader defines read operations for task data
type TaskReader interface {
	// FindTaskByID retrieves a specific task by ID.
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// FindTasks retrieves all tasks in insertion order.
	FindTasks(ctx context.Context) ([]domain.Task, error)
}

// TaskWriter defines write operations for task data
type TaskWriter interface {
	// SaveTask appends a new task to the collection.
	SaveTask(ctx context.Context, task domain.Task) error

	// UpdateTask replaces the task matching task.TaskID in place.
	// Missing IDs are a silent no-op. ReminderSent is sticky: an update can
	// never revert it from true to false.
	UpdateTask(ctx context.Context, task domain.Task) error

	// MarkReminderSent sets ReminderSent on the matching task. Idempotent;
	// missing or already-sent IDs are a silent no-op.
	MarkReminderSent(ctx context.Context, taskID string) error
}

// TaskRepositoryFacade combines all task repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
