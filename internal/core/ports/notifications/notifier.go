package notifications

import "context"

// PermissionStatus mirrors the host environment's notification authorization.
type PermissionStatus string

const (
	// PermissionDefault means the user has not been asked yet.
	PermissionDefault PermissionStatus = "default"
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// Notification is a title plus body delivered to the shop owner.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier is the outbound capability for delivering reminders.
// The core queries and requests authorization but never assumes it:
// while permission is denied or undetermined, no notification may be sent.
type Notifier interface {
	// Permission returns the current authorization status.
	Permission(ctx context.Context) PermissionStatus

	// RequestPermission asks the host environment for authorization and
	// returns the resulting status. Safe to call when already decided.
	RequestPermission(ctx context.Context) (PermissionStatus, error)

	// Notify delivers a notification. Callers must hold granted permission.
	Notify(ctx context.Context, n Notification) error
}
