package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/google/uuid"
)

// taskService implements the TaskSvcFacade interface
type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
}

// NewTaskService creates a new task service
func NewTaskService(repo portsrepo.TaskRepositoryFacade) portssvc.TaskSvcFacade {
	return &taskService{taskRepo: repo}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error) {
	now := time.Now()
	task := domain.Task{
		TaskID:       uuid.NewString(),
		Title:        req.Title,
		DueDate:      req.DueDate,
		Status:       domain.TaskPending,
		ReminderTime: req.ReminderTime,
		ReminderSent: false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("task_id", task.TaskID))
		return nil, err
	}

	s.LogInfo(ctx, "Task created successfully",
		slog.String("task_id", task.TaskID),
		slog.Bool("has_reminder", task.HasReminder()))
	return &task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find task by ID", slog.String("task_id", taskID))
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskRepo.FindTasks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks")
		return nil, err
	}
	if tasks == nil {
		return []domain.Task{}, nil
	}
	return tasks, nil
}

// UpdateTask replaces the task's editable fields. The repository keeps
// ReminderSent sticky, so an edit can never rearm a reminder that already
// fired.
func (s *taskService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	existing, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	updated := domain.Task{
		TaskID:       existing.TaskID,
		Title:        req.Title,
		DueDate:      req.DueDate,
		Status:       req.Status,
		ReminderTime: req.ReminderTime,
		ReminderSent: existing.ReminderSent,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			LastUpdatedAt: time.Now(),
		},
	}

	if err := s.taskRepo.UpdateTask(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update task", slog.String("task_id", taskID))
		return nil, err
	}

	s.LogInfo(ctx, "Task updated successfully", slog.String("task_id", taskID))
	return &updated, nil
}

func (s *taskService) UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	existing, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Status = status
	updated.LastUpdatedAt = time.Now()

	if err := s.taskRepo.UpdateTask(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update task status", slog.String("task_id", taskID))
		return nil, err
	}

	s.LogInfo(ctx, "Task status updated",
		slog.String("task_id", taskID),
		slog.String("status", string(status)))
	return &updated, nil
}
