package lifecycle

import (
	"testing"

	"github.com/luminaos/lumina-welcome/internal/logging"
)

func TestHookCleanupNilMarker(t *testing.T) {
	// Degraded environments hold no marker; hooking must be a no-op, not
	// a panic.
	HookCleanup(nil, logging.NewNop())
}
