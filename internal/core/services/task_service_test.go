package services_test

import (
	"context"
	"testing"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/store/memory"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/stretchr/testify/suite"
)

type TaskServiceTestSuite struct {
	suite.Suite
	repo    *memory.TaskRepository
	service portssvc.TaskSvcFacade
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.repo = memory.NewTaskRepository()
	suite.service = services.NewTaskService(suite.repo)
}

func (suite *TaskServiceTestSuite) TestCreateTask_Defaults() {
	ctx := context.Background()
	task, err := suite.service.CreateTask(ctx, dto.CreateTaskRequest{
		Title:        "Order stock",
		DueDate:      "2025-03-01",
		ReminderTime: "09:00",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(task.TaskID)
	suite.Equal(domain.TaskPending, task.Status)
	suite.False(task.ReminderSent)
	suite.True(task.HasReminder())
}

// Editing a task after its reminder fired must not rearm the reminder.
func (suite *TaskServiceTestSuite) TestUpdateTask_ReminderSentStaysSticky() {
	ctx := context.Background()
	task, err := suite.service.CreateTask(ctx, dto.CreateTaskRequest{
		Title:        "Order stock",
		DueDate:      "2025-03-01",
		ReminderTime: "09:00",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.MarkReminderSent(ctx, task.TaskID))

	updated, err := suite.service.UpdateTask(ctx, task.TaskID, dto.UpdateTaskRequest{
		Title:        "Order stock urgently",
		DueDate:      "2025-03-02",
		Status:       domain.TaskInProgress,
		ReminderTime: "10:00",
	})

	suite.Require().NoError(err)
	suite.Equal("Order stock urgently", updated.Title)
	suite.True(updated.ReminderSent)

	stored, err := suite.repo.FindTaskByID(ctx, task.TaskID)
	suite.Require().NoError(err)
	suite.True(stored.ReminderSent)
}

func (suite *TaskServiceTestSuite) TestUpdateTaskStatus_OnlyChangesStatus() {
	ctx := context.Background()
	task, err := suite.service.CreateTask(ctx, dto.CreateTaskRequest{
		Title:   "Order stock",
		DueDate: "2025-03-01",
	})
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateTaskStatus(ctx, task.TaskID, domain.TaskCompleted)

	suite.Require().NoError(err)
	suite.Equal(domain.TaskCompleted, updated.Status)
	suite.Equal(task.Title, updated.Title)
	suite.Equal(task.DueDate, updated.DueDate)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_NotFound() {
	ctx := context.Background()
	_, err := suite.service.UpdateTask(ctx, "missing", dto.UpdateTaskRequest{
		Title:   "X",
		DueDate: "2025-03-01",
		Status:  domain.TaskPending,
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TaskServiceTestSuite) TestListTasks_InsertionOrder() {
	ctx := context.Background()
	for _, title := range []string{"first", "second", "third"} {
		_, err := suite.service.CreateTask(ctx, dto.CreateTaskRequest{
			Title:   title,
			DueDate: "2025-03-01",
		})
		suite.Require().NoError(err)
	}

	tasks, err := suite.service.ListTasks(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 3)
	suite.Equal("first", tasks[0].Title)
	suite.Equal("second", tasks[1].Title)
	suite.Equal("third", tasks[2].Title)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
