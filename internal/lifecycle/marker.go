// Package lifecycle decides whether the greeter may run at all and what it
// launches when the user finishes the flow. It owns the two marker files:
// the session lock and the persistent first-run completion marker.
package lifecycle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/luminaos/lumina-welcome/internal/logging"
)

// ErrAlreadyRunning is returned by acquireSessionMarker when another live
// instance holds the session marker.
var ErrAlreadyRunning = errors.New("another instance is already running")

// SessionMarker is the held session lock. It is created exclusively at
// startup and must be released exactly once on the way out; Release is
// idempotent so the signal path and the normal exit path can both call it.
type SessionMarker struct {
	path   string
	logger *logging.Logger
	once   sync.Once
}

// Path returns the lock file location.
func (m *SessionMarker) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

// Release deletes the session marker. Safe to call from a signal handler
// and from the normal exit path; only the first call does anything.
func (m *SessionMarker) Release() {
	if m == nil {
		return
	}
	m.once.Do(func() {
		if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
			m.logger.Warn().Err(err).Str("path", m.path).Msg("Failed to remove session marker")
		} else {
			m.logger.Debug().Str("path", m.path).Msg("Session marker released")
		}
	})
}

// acquireSessionMarker creates the session lock file exclusively.
// The file records the owning pid and a launch id, so a marker left behind
// by a crashed session can be recognized as stale and reclaimed.
func acquireSessionMarker(path string, logger *logging.Logger) (*SessionMarker, error) {
	marker, err := tryCreateMarker(path, logger)
	if err == nil || !errors.Is(err, os.ErrExist) {
		return marker, err
	}

	// Marker exists. If its owner is gone this is a leftover from a
	// crashed session; reclaim it and retry once.
	pid := readMarkerPid(path)
	if pid > 0 && isProcessAlive(pid) {
		return nil, fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
	}
	logger.Warn().Str("path", path).Int("pid", pid).Msg("Reclaiming stale session marker")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove stale session marker: %w", err)
	}

	marker, err = tryCreateMarker(path, logger)
	if err != nil && errors.Is(err, os.ErrExist) {
		return nil, ErrAlreadyRunning
	}
	return marker, err
}

func tryCreateMarker(path string, logger *logging.Logger) (*SessionMarker, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fmt.Fprintf(f, "%d\n%s\n", os.Getpid(), uuid.NewString())
	return &SessionMarker{path: path, logger: logger}, nil
}

// readMarkerPid parses the pid recorded in a session marker.
// Returns 0 for a missing or malformed marker.
func readMarkerPid(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	line, _, _ := strings.Cut(string(data), "\n")
	pid, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || pid <= 0 {
		return 0
	}
	return pid
}

// isProcessAlive checks whether a process with the given pid exists,
// using kill(0) which probes without delivering a signal.
func isProcessAlive(pid int) bool {
	return unix.Kill(pid, 0) == nil
}

// writeCompletionMarker records that the one-time first-run flow finished.
// The marker is write-once and never deleted by the greeter. A write
// failure is reported to the caller for logging but must not block the
// exit action; worst case the greeter shows up once more on next boot,
// which beats blocking first-boot setup entirely.
func writeCompletionMarker(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	content := fmt.Sprintf("completed %s\n", time.Now().Format(time.RFC3339))
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write completion marker: %w", err)
	}
	return nil
}
