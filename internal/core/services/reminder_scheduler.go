package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsnotif "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/notifications"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
)

// DefaultReminderPollInterval is how often the scheduler scans the task
// list when no interval is configured.
const DefaultReminderPollInterval = 30 * time.Second

// ReminderScheduler periodically scans tasks and delivers one-shot
// reminders for those whose due moment has passed. Detection is
// level-triggered: a poll that lands after the due moment still fires,
// no matter how late it is. Delivery is at-least-once; a task is marked
// sent only after its notification went out, so a crash between the two
// may repeat a reminder but never lose one.
type ReminderScheduler struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
	notifier portsnotif.Notifier
	interval time.Duration
}

// ReminderSchedulerOption configures a ReminderScheduler.
type ReminderSchedulerOption func(*ReminderScheduler)

// WithPollInterval overrides the scan interval.
func WithPollInterval(d time.Duration) ReminderSchedulerOption {
	return func(s *ReminderScheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// NewReminderScheduler creates a reminder scheduler.
func NewReminderScheduler(taskRepo portsrepo.TaskRepositoryFacade, notifier portsnotif.Notifier, opts ...ReminderSchedulerOption) *ReminderScheduler {
	s := &ReminderScheduler{
		taskRepo: taskRepo,
		notifier: notifier,
		interval: DefaultReminderPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run polls until ctx is cancelled. It requests notification permission
// once up front when the status is still undecided, then scans on every
// tick. Blocks; run it on its own goroutine.
func (s *ReminderScheduler) Run(ctx context.Context) {
	if s.notifier.Permission(ctx) == portsnotif.PermissionDefault {
		status, err := s.notifier.RequestPermission(ctx)
		if err != nil {
			s.LogError(ctx, err, "Notification permission request failed")
		} else {
			s.LogInfo(ctx, "Notification permission resolved", slog.String("status", string(status)))
		}
	}

	s.LogInfo(ctx, "Reminder scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.LogInfo(ctx, "Reminder scheduler stopped")
			return
		case now := <-ticker.C:
			s.Tick(ctx, now)
		}
	}
}

// Tick performs a single scan at the given instant. While permission is
// not granted the scan is skipped entirely and nothing is marked, so due
// reminders fire on the first scan after permission arrives.
func (s *ReminderScheduler) Tick(ctx context.Context, now time.Time) {
	if s.notifier.Permission(ctx) != portsnotif.PermissionGranted {
		return
	}

	tasks, err := s.taskRepo.FindTasks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Reminder scan failed to load tasks")
		return
	}

	for _, task := range tasks {
		if task.ReminderSent || task.Status == domain.TaskCompleted {
			continue
		}
		if !task.ReminderDue(now) {
			continue
		}

		n := portsnotif.Notification{
			Title: "Task Reminder",
			Body:  task.Title + " is due today at " + task.ReminderTime,
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			// Leave the task unmarked so the next tick retries.
			s.LogError(ctx, err, "Failed to deliver reminder", slog.String("task_id", task.TaskID))
			continue
		}

		if err := s.taskRepo.MarkReminderSent(ctx, task.TaskID); err != nil {
			s.LogError(ctx, err, "Failed to mark reminder as sent", slog.String("task_id", task.TaskID))
			continue
		}

		s.LogInfo(ctx, "Reminder delivered",
			slog.String("task_id", task.TaskID),
			slog.String("title", task.Title))
	}
}
