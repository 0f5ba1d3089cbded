package domain

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// Task is a to-do item with an optional one-shot reminder.
// ReminderSent is owned by the reminder scheduler: once true it never
// reverts to false.
type Task struct {
	TaskID       string     `json:"taskID"` // Primary Key (UUID)
	Title        string     `json:"title"`
	DueDate      string     `json:"dueDate"`      // calendar date, DateLayout
	Status       TaskStatus `json:"status"`       // Pending, In Progress or Completed
	ReminderTime string     `json:"reminderTime"` // time of day, TimeOfDayLayout; empty means no reminder
	ReminderSent bool       `json:"reminderSent"`
	AuditFields
}

// HasReminder reports whether a reminder time is configured for the task.
func (t Task) HasReminder() bool {
	return t.ReminderTime != ""
}

// ReminderDue reports whether the task's reminder moment (due date combined
// with the reminder time of day, in now's location) has been reached.
// Tasks without a reminder, or with an unparseable date, are never due.
func (t Task) ReminderDue(now time.Time) bool {
	if !t.HasReminder() {
		return false
	}
	at, err := time.ParseInLocation(DateLayout+" "+TimeOfDayLayout, t.DueDate+" "+t.ReminderTime, now.Location())
	if err != nil {
		return false
	}
	return !now.Before(at)
}
