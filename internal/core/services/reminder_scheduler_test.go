package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/store/memory"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsnotif "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/notifications"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// fakeNotifier records deliveries and lets tests flip permission between
// ticks.
type fakeNotifier struct {
	mu        sync.Mutex
	status    portsnotif.PermissionStatus
	sent      []portsnotif.Notification
	notifyErr error
}

func newFakeNotifier(status portsnotif.PermissionStatus) *fakeNotifier {
	return &fakeNotifier{status: status}
}

func (f *fakeNotifier) Permission(ctx context.Context) portsnotif.PermissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeNotifier) RequestPermission(ctx context.Context) (portsnotif.PermissionStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == portsnotif.PermissionDefault {
		f.status = portsnotif.PermissionGranted
	}
	return f.status, nil
}

func (f *fakeNotifier) Notify(ctx context.Context, n portsnotif.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.sent = append(f.sent, n)
	return nil
}

func (f *fakeNotifier) setStatus(s portsnotif.PermissionStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = s
}

func (f *fakeNotifier) delivered() []portsnotif.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]portsnotif.Notification(nil), f.sent...)
}

type ReminderSchedulerTestSuite struct {
	suite.Suite
	taskRepo  *memory.TaskRepository
	notifier  *fakeNotifier
	scheduler *services.ReminderScheduler
}

func (suite *ReminderSchedulerTestSuite) SetupTest() {
	suite.taskRepo = memory.NewTaskRepository()
	suite.notifier = newFakeNotifier(portsnotif.PermissionGranted)
	suite.scheduler = services.NewReminderScheduler(suite.taskRepo, suite.notifier)
}

func (suite *ReminderSchedulerTestSuite) saveTask(task domain.Task) {
	suite.Require().NoError(suite.taskRepo.SaveTask(context.Background(), task))
}

// at builds a wall-clock instant on the given date in local time, matching
// how ReminderDue parses its inputs.
func at(date, clock string) time.Time {
	t, err := time.ParseInLocation(domain.DateLayout+" "+domain.TimeOfDayLayout, date+" "+clock, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func (suite *ReminderSchedulerTestSuite) TestTick_FiresOncePerTask() {
	ctx := context.Background()
	suite.saveTask(domain.Task{
		TaskID:       "t-1",
		Title:        "Restock sugar",
		DueDate:      "2025-03-01",
		Status:       domain.TaskPending,
		ReminderTime: "09:00",
	})

	// One second past the due moment.
	now := at("2025-03-01", "09:00").Add(time.Second)
	suite.scheduler.Tick(ctx, now)

	sent := suite.notifier.delivered()
	suite.Require().Len(sent, 1)
	suite.Equal("Task Reminder", sent[0].Title)
	suite.Contains(sent[0].Body, "Restock sugar")

	task, err := suite.taskRepo.FindTaskByID(ctx, "t-1")
	suite.Require().NoError(err)
	suite.True(task.ReminderSent)

	// Later ticks emit nothing more.
	suite.scheduler.Tick(ctx, now.Add(time.Minute))
	suite.scheduler.Tick(ctx, now.Add(time.Hour))
	suite.Len(suite.notifier.delivered(), 1)
}

func (suite *ReminderSchedulerTestSuite) TestTick_NotDueYet() {
	ctx := context.Background()
	suite.saveTask(domain.Task{
		TaskID:       "t-1",
		Title:        "Restock sugar",
		DueDate:      "2025-03-01",
		Status:       domain.TaskPending,
		ReminderTime: "09:00",
	})

	suite.scheduler.Tick(ctx, at("2025-03-01", "08:59"))

	suite.Empty(suite.notifier.delivered())
	task, err := suite.taskRepo.FindTaskByID(ctx, "t-1")
	suite.Require().NoError(err)
	suite.False(task.ReminderSent)
}

// A tick long after the due moment still fires: the check is on the level
// of "now >= due", not on crossing the boundary.
func (suite *ReminderSchedulerTestSuite) TestTick_OverdueStillFires() {
	ctx := context.Background()
	suite.saveTask(domain.Task{
		TaskID:       "t-1",
		Title:        "Pay supplier",
		DueDate:      "2025-03-01",
		Status:       domain.TaskPending,
		ReminderTime: "09:00",
	})

	suite.scheduler.Tick(ctx, at("2025-03-03", "17:30"))

	suite.Len(suite.notifier.delivered(), 1)
}

func (suite *ReminderSchedulerTestSuite) TestTick_CompletedTaskNeverFires() {
	ctx := context.Background()
	suite.saveTask(domain.Task{
		TaskID:       "t-1",
		Title:        "Pay supplier",
		DueDate:      "2025-03-01",
		Status:       domain.TaskCompleted,
		ReminderTime: "09:00",
	})

	suite.scheduler.Tick(ctx, at("2025-03-01", "09:05"))

	suite.Empty(suite.notifier.delivered())
	task, err := suite.taskRepo.FindTaskByID(ctx, "t-1")
	suite.Require().NoError(err)
	suite.False(task.ReminderSent)
}

func (suite *ReminderSchedulerTestSuite) TestTick_NoReminderTimeNeverFires() {
	ctx := context.Background()
	suite.saveTask(domain.Task{
		TaskID:  "t-1",
		Title:   "Sweep the shop",
		DueDate: "2025-03-01",
		Status:  domain.TaskPending,
	})

	suite.scheduler.Tick(ctx, at("2025-03-02", "12:00"))

	suite.Empty(suite.notifier.delivered())
}

// While permission is denied, due tasks are neither notified nor marked,
// so they fire on the first tick after permission arrives.
func (suite *ReminderSchedulerTestSuite) TestTick_DeniedPermissionSkipsWithoutMarking() {
	ctx := context.Background()
	suite.notifier.setStatus(portsnotif.PermissionDenied)
	suite.saveTask(domain.Task{
		TaskID:       "t-1",
		Title:        "Pay supplier",
		DueDate:      "2025-03-01",
		Status:       domain.TaskPending,
		ReminderTime: "09:00",
	})

	now := at("2025-03-01", "09:05")
	suite.scheduler.Tick(ctx, now)

	suite.Empty(suite.notifier.delivered())
	task, err := suite.taskRepo.FindTaskByID(ctx, "t-1")
	suite.Require().NoError(err)
	suite.False(task.ReminderSent)

	suite.notifier.setStatus(portsnotif.PermissionGranted)
	suite.scheduler.Tick(ctx, now.Add(30*time.Second))

	suite.Len(suite.notifier.delivered(), 1)
	task, err = suite.taskRepo.FindTaskByID(ctx, "t-1")
	suite.Require().NoError(err)
	suite.True(task.ReminderSent)
}

// A failed delivery leaves the task unmarked so the next tick retries.
func (suite *ReminderSchedulerTestSuite) TestTick_FailedDeliveryRetriesNextTick() {
	ctx := context.Background()
	suite.notifier.notifyErr = context.DeadlineExceeded
	suite.saveTask(domain.Task{
		TaskID:       "t-1",
		Title:        "Pay supplier",
		DueDate:      "2025-03-01",
		Status:       domain.TaskPending,
		ReminderTime: "09:00",
	})

	now := at("2025-03-01", "09:05")
	suite.scheduler.Tick(ctx, now)

	task, err := suite.taskRepo.FindTaskByID(ctx, "t-1")
	suite.Require().NoError(err)
	suite.False(task.ReminderSent)

	suite.notifier.mu.Lock()
	suite.notifier.notifyErr = nil
	suite.notifier.mu.Unlock()

	suite.scheduler.Tick(ctx, now.Add(30*time.Second))
	suite.Len(suite.notifier.delivered(), 1)
}

func (suite *ReminderSchedulerTestSuite) TestTick_MultipleTasksScannedInOnePass() {
	ctx := context.Background()
	suite.saveTask(domain.Task{
		TaskID: "t-1", Title: "A", DueDate: "2025-03-01",
		Status: domain.TaskPending, ReminderTime: "08:00",
	})
	suite.saveTask(domain.Task{
		TaskID: "t-2", Title: "B", DueDate: "2025-03-01",
		Status: domain.TaskPending, ReminderTime: "09:00",
	})
	suite.saveTask(domain.Task{
		TaskID: "t-3", Title: "C", DueDate: "2025-03-01",
		Status: domain.TaskPending, ReminderTime: "18:00",
	})

	suite.scheduler.Tick(ctx, at("2025-03-01", "09:30"))

	sent := suite.notifier.delivered()
	suite.Require().Len(sent, 2)
	suite.Contains(sent[0].Body, "A")
	suite.Contains(sent[1].Body, "B")
}

// Run requests permission once at startup when the status is undecided and
// stops cleanly on context cancellation.
func (suite *ReminderSchedulerTestSuite) TestRun_RequestsPermissionAndStops() {
	notifier := newFakeNotifier(portsnotif.PermissionDefault)
	scheduler := services.NewReminderScheduler(suite.taskRepo, notifier,
		services.WithPollInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	suite.Eventually(func() bool {
		return notifier.Permission(context.Background()) == portsnotif.PermissionGranted
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		suite.Fail("scheduler did not stop after cancellation")
	}
}

func TestReminderSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderSchedulerTestSuite))
}
