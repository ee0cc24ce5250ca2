package lifecycle

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/luminaos/lumina-welcome/internal/logging"
)

// deadPid returns a pid guaranteed to be unused: a child that has already
// been spawned, exited, and reaped.
func deadPid(t *testing.T) int {
	t.Helper()
	cmd := exec.Command("true")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to run true: %v", err)
	}
	return cmd.Process.Pid
}

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "lumina-welcome.lock")

	marker, err := acquireSessionMarker(path, logging.NewNop())
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("session marker not created: %v", err)
	}
	if pid := readMarkerPid(path); pid != os.Getpid() {
		t.Errorf("marker records pid %d, want %d", pid, os.Getpid())
	}

	marker.Release()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("session marker still exists after Release")
	}

	// Idempotent: a second release must be harmless.
	marker.Release()
}

func TestAcquireFailsWhenHeldByLiveProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumina-welcome.lock")
	content := fmt.Sprintf("%d\ntest\n", os.Getpid())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := acquireSessionMarker(path, logging.NewNop())
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	// The held marker must be left alone.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("held marker was removed: %v", err)
	}
}

func TestAcquireReclaimsStaleMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumina-welcome.lock")
	content := fmt.Sprintf("%d\ntest\n", deadPid(t))
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	marker, err := acquireSessionMarker(path, logging.NewNop())
	if err != nil {
		t.Fatalf("expected stale marker to be reclaimed, got: %v", err)
	}
	if pid := readMarkerPid(path); pid != os.Getpid() {
		t.Errorf("reclaimed marker records pid %d, want %d", pid, os.Getpid())
	}
	marker.Release()
}

func TestAcquireReclaimsMalformedMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumina-welcome.lock")
	if err := os.WriteFile(path, []byte("not a pid\n"), 0600); err != nil {
		t.Fatal(err)
	}

	marker, err := acquireSessionMarker(path, logging.NewNop())
	if err != nil {
		t.Fatalf("expected malformed marker to be reclaimed, got: %v", err)
	}
	marker.Release()
}

func TestReadMarkerPid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"valid", "1234\nabc\n", 1234},
		{"no trailing data", "42", 42},
		{"garbage", "hello\n", 0},
		{"negative", "-5\n", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if got := readMarkerPid(path); got != tt.want {
				t.Errorf("readMarkerPid(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}

	if got := readMarkerPid(filepath.Join(dir, "missing")); got != 0 {
		t.Errorf("readMarkerPid on missing file = %d, want 0", got)
	}
}

func TestReleaseNilMarker(t *testing.T) {
	var marker *SessionMarker
	marker.Release() // must not panic
	if marker.Path() != "" {
		t.Error("nil marker should have empty path")
	}
}

func TestWriteCompletionMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "first-run-done")
	if err := writeCompletionMarker(path); err != nil {
		t.Fatalf("writeCompletionMarker failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("completion marker not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("completion marker is empty")
	}
}
