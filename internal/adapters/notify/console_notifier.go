// Package notify implements the notification capability the reminder
// scheduler depends on. The console notifier logs notifications; the
// webhook notifier POSTs them to an external endpoint.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/notifications"
)

// ConsoleNotifier delivers notifications through the structured logger.
// Its permission state models the host-environment prompt: a notifier
// started in the default state grants permission on the first request.
type ConsoleNotifier struct {
	logger *slog.Logger

	mu     sync.Mutex
	status notifications.PermissionStatus
}

// NewConsoleNotifier creates a console notifier with the given initial
// permission status.
func NewConsoleNotifier(logger *slog.Logger, status notifications.PermissionStatus) *ConsoleNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	if status == "" {
		status = notifications.PermissionDefault
	}
	return &ConsoleNotifier{logger: logger, status: status}
}

var _ notifications.Notifier = (*ConsoleNotifier)(nil)

// Permission returns the current authorization status.
func (n *ConsoleNotifier) Permission(ctx context.Context) notifications.PermissionStatus {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.status
}

// RequestPermission grants authorization when it is still undetermined.
// A denied status stays denied; only the configuration can lift it.
func (n *ConsoleNotifier) RequestPermission(ctx context.Context) (notifications.PermissionStatus, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.status == notifications.PermissionDefault {
		n.status = notifications.PermissionGranted
		n.logger.Info("Notification permission granted")
	}
	return n.status, nil
}

// Notify logs the notification.
func (n *ConsoleNotifier) Notify(ctx context.Context, notification notifications.Notification) error {
	n.logger.Info("Notification delivered",
		slog.String("title", notification.Title),
		slog.String("body", notification.Body),
	)
	return nil
}
