// Package notify provides desktop notifications for Lumina Welcome.
// It uses github.com/gen2brain/beeep for cross-desktop notification support.
package notify

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/luminaos/lumina-welcome/internal/logging"
)

// Notifier handles desktop notifications.
type Notifier struct {
	logger  *logging.Logger
	enabled bool
	mu      sync.RWMutex
}

// NewNotifier creates a new notifier.
func NewNotifier(enabled bool, logger *logging.Logger) *Notifier {
	return &Notifier{
		logger:  logger,
		enabled: enabled,
	}
}

// SetEnabled enables or disables notifications.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.enabled
}

// LaunchFailed sends a notification when an exit command could not be
// started. Shown alongside the blocking in-app dialog, so users who
// minimized the greeter still see what went wrong.
func (n *Notifier) LaunchFailed(command string, errorMsg string) {
	if !n.IsEnabled() {
		return
	}

	title := "Lumina Welcome"
	message := fmt.Sprintf("Could not start \"%s\":\n%s", truncate(command, 40), truncate(errorMsg, 100))

	if err := n.send(title, message); err != nil {
		n.logger.Warn().Err(err).Str("command", command).Msg("Failed to send launch failure notification")
	}
}

// ToolWarning sends a notification when a wallpaper or theme utility exits
// non-zero. The flow continues regardless.
func (n *Notifier) ToolWarning(tool string, errorMsg string) {
	if !n.IsEnabled() {
		return
	}

	title := "Lumina Welcome"
	message := fmt.Sprintf("\"%s\" reported a problem:\n%s", truncate(tool, 40), truncate(errorMsg, 100))

	if err := n.send(title, message); err != nil {
		n.logger.Warn().Err(err).Str("tool", tool).Msg("Failed to send tool warning notification")
	}
}

// send dispatches a notification through beeep.
func (n *Notifier) send(title, message string) error {
	return beeep.Notify(title, message, "")
}

// truncate shortens a string to maxLen, appending "..." when it cuts.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}
