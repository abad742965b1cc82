// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/charchat/internal/logger"
	"github.com/zhubert/charchat/internal/toast"
)

// AppName is used as the notification title.
const AppName = "charchat"

type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the notification backend. Tests only.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep as the backend.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Log("Notification: Sending notification - title=%q, message=%q", title, message)
	// Empty icon lets beeep pick the platform default.
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: Failed to send notification: %v", err)
	}
	return err
}

// Toast mirrors a toast as a desktop notification.
func Toast(t toast.Toast) error {
	title := AppName
	if t.Kind == toast.Error {
		title = AppName + ": error"
	}
	return Send(title, t.Message)
}
