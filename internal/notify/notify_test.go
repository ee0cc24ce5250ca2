package notify

import (
	"testing"

	"github.com/luminaos/lumina-welcome/internal/logging"
)

func TestEnabledFlag(t *testing.T) {
	n := NewNotifier(true, logging.NewNop())
	if !n.IsEnabled() {
		t.Error("expected notifier to start enabled")
	}

	n.SetEnabled(false)
	if n.IsEnabled() {
		t.Error("expected notifier to be disabled after SetEnabled(false)")
	}
}

func TestDisabledNotifierSendsNothing(t *testing.T) {
	// With notifications off these must return without touching the
	// desktop notification service.
	n := NewNotifier(false, logging.NewNop())
	n.LaunchFailed("calamares", "not found")
	n.ToolWarning("lumina-wallpaper", "exit status 1")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10c", 10, "exactly10c"},
		{"this is a long string", 10, "this is..."},
		{"", 10, ""},
		{"abc", 3, "abc"},
		{"abcd", 3, "..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
		}
	}
}
