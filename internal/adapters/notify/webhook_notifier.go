package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/notifications"
)

// WebhookNotifier POSTs notifications as JSON to a configured endpoint.
// Permission is granted exactly when a URL is configured; there is no
// prompt to show, so RequestPermission just reports the current state.
type WebhookNotifier struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewWebhookNotifier creates a webhook notifier for the given URL.
func NewWebhookNotifier(url string, logger *slog.Logger) *WebhookNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

var _ notifications.Notifier = (*WebhookNotifier)(nil)

// Permission reports granted when a delivery URL is configured.
func (n *WebhookNotifier) Permission(ctx context.Context) notifications.PermissionStatus {
	if n.url == "" {
		return notifications.PermissionDenied
	}
	return notifications.PermissionGranted
}

// RequestPermission reports the current state; webhook authorization is
// purely configuration-driven.
func (n *WebhookNotifier) RequestPermission(ctx context.Context) (notifications.PermissionStatus, error) {
	return n.Permission(ctx), nil
}

// Notify delivers the notification with a single JSON POST.
func (n *WebhookNotifier) Notify(ctx context.Context, notification notifications.Notification) error {
	if n.url == "" {
		return apperrors.ErrNotificationDenied
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification delivery failed: status %d", resp.StatusCode)
	}

	n.logger.Debug("Notification delivered via webhook",
		slog.String("title", notification.Title),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}
