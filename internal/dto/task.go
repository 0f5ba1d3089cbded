package dto

import (
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// CreateTaskRequest defines the data needed to add a task.
// Status and reminderSent are server-assigned (Pending, false).
type CreateTaskRequest struct {
	Title        string `json:"title" binding:"required"`
	DueDate      string `json:"dueDate" binding:"required,datetime=2006-01-02"`
	ReminderTime string `json:"reminderTime" binding:"omitempty,datetime=15:04"`
}

// UpdateTaskRequest carries the full edited record. ReminderSent is owned
// by the scheduler and cannot be changed here.
type UpdateTaskRequest struct {
	Title        string            `json:"title" binding:"required"`
	DueDate      string            `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Status       domain.TaskStatus `json:"status" binding:"required,oneof=Pending 'In Progress' Completed"`
	ReminderTime string            `json:"reminderTime" binding:"omitempty,datetime=15:04"`
}

// UpdateTaskStatusRequest changes only the workflow status, matching the
// dashboard's status dropdown.
type UpdateTaskStatusRequest struct {
	Status domain.TaskStatus `json:"status" binding:"required,oneof=Pending 'In Progress' Completed"`
}

// TaskResponse defines the data returned for a task.
type TaskResponse struct {
	TaskID        string            `json:"taskID"`
	Title         string            `json:"title"`
	DueDate       string            `json:"dueDate"`
	Status        domain.TaskStatus `json:"status"`
	ReminderTime  string            `json:"reminderTime,omitempty"`
	ReminderSent  bool              `json:"reminderSent"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ToTaskResponse converts a domain.Task to TaskResponse DTO
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:        t.TaskID,
		Title:         t.Title,
		DueDate:       t.DueDate,
		Status:        t.Status,
		ReminderTime:  t.ReminderTime,
		ReminderSent:  t.ReminderSent,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ListTasksResponse wraps the task list snapshot.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToListTasksResponse converts a task list snapshot to its DTO form.
func ToListTasksResponse(tasks []domain.Task) ListTasksResponse {
	res := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = ToTaskResponse(&t)
	}
	return ListTasksResponse{Tasks: res}
}
