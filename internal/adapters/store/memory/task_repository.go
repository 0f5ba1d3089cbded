package memory

import (
	"context"
	"sync"
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
)

// TaskRepository holds the task list in memory.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

// NewTaskRepository creates an empty task repository.
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

var _ portsrepo.TaskRepositoryFacade = (*TaskRepository)(nil)

// SaveTask appends the task to the end of the list.
func (r *TaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
	return nil
}

// FindTaskByID returns a copy of the matching task.
func (r *TaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.tasks {
		if r.tasks[i].TaskID == taskID {
			t := r.tasks[i]
			return &t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindTasks returns a snapshot of the list in insertion order.
func (r *TaskRepository) FindTasks(ctx context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Task(nil), r.tasks...), nil
}

// UpdateTask replaces the matching task in place, keeping its position.
// ReminderSent is sticky: once true it stays true no matter what the
// replacement carries. A missing ID leaves the list untouched.
func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].TaskID == task.TaskID {
			if r.tasks[i].ReminderSent {
				task.ReminderSent = true
			}
			r.tasks[i] = task
			return nil
		}
	}
	return nil
}

// MarkReminderSent flips ReminderSent on the matching task. Calling it
// again, or with an unknown ID, changes nothing.
func (r *TaskRepository) MarkReminderSent(ctx context.Context, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].TaskID == taskID {
			if !r.tasks[i].ReminderSent {
				r.tasks[i].ReminderSent = true
				r.tasks[i].LastUpdatedAt = time.Now()
			}
			return nil
		}
	}
	return nil
}
