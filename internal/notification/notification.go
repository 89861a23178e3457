// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/mosaicterm/mosaic/internal/logger"
)

// NotifyFunc matches beeep.Notify and exists so tests can intercept sends.
type NotifyFunc func(title, message, icon string) error

// beeepNotify adapts beeep.Notify, whose icon parameter is typed any.
func beeepNotify(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

var notify NotifyFunc = beeepNotify

// SetNotifier replaces the backend notification function.
func SetNotifier(fn NotifyFunc) {
	notify = fn
}

// ResetNotifier restores the default backend.
func ResetNotifier() {
	notify = beeepNotify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Debug("notification: sending title=%q message=%q", title, message)
	// Empty icon string, beeep picks platform defaults
	err := notify(title, message, "")
	if err != nil {
		logger.Warn("notification: send failed: %v", err)
	}
	return err
}

// PanelAttention notifies that a panel the user cannot currently see wants
// attention.
func PanelAttention(panelTitle, message string) error {
	if message == "" {
		message = "requests your attention"
	}
	return Send("Mosaic: "+panelTitle, message)
}
