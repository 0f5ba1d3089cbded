package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taskHandler handles HTTP requests related to tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{
		taskService: ts,
	}
}

// registerTaskRoutes registers routes related to tasks.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:id", h.getTaskByID)
		tasks.PUT("/:id", h.updateTask)
		tasks.PUT("/:id/status", h.updateTaskStatus)
	}
}

// createTask godoc
// @Summary Add a task
// @Description Adds a task; new tasks start Pending with the reminder unarmed
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create task", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// listTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce  json
// @Success 200 {object} dto.ListTasksResponse
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list tasks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTasksResponse(tasks))
}

// getTaskByID godoc
// @Summary Get a task
// @Tags tasks
// @Produce  json
// @Param   id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id} [get]
func (h *taskHandler) getTaskByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taskID := c.Param("id")

	task, err := h.taskService.GetTaskByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			logger.Error("Failed to get task", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get task"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// updateTask godoc
// @Summary Update a task
// @Description Replaces the task's editable fields; a fired reminder stays fired
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   id path string true "Task ID"
// @Param   task body dto.UpdateTaskRequest true "Task details"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id} [put]
func (h *taskHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taskID := c.Param("id")

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			logger.Error("Failed to update task", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// updateTaskStatus godoc
// @Summary Change a task's status
// @Description Moves the task between Pending, In Progress and Completed
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   id path string true "Task ID"
// @Param   status body dto.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /tasks/{id}/status [put]
func (h *taskHandler) updateTaskStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taskID := c.Param("id")

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTaskStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), taskID, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			logger.Error("Failed to update task status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}
