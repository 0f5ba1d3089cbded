package services

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
)

// TaskSvcFacade defines the operations available on the task list.
type TaskSvcFacade interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error)
	GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error)
}
