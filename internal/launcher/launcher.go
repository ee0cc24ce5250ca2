// Package launcher starts the external programs the greeter hands off to:
// the system installer, the session helper, and the wallpaper/theme tools.
package launcher

import (
	"fmt"
	"os/exec"
	"syscall"
)

// Detach starts a command fire-and-forget in its own session, with stdio
// disconnected, and releases the process handle so the greeter can exit
// while the child keeps running. The child's exit status is never observed.
func Detach(name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("command %q not found: %w", name, err)
	}

	cmd := exec.Command(path, args...)

	// Detach from the greeter's terminal and session
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %w", name, err)
	}

	// Release the process so it runs independently; the greeter never
	// waits on or reaps it.
	return cmd.Process.Release()
}

// Run executes a command synchronously and reports a non-zero exit or a
// spawn failure as an error. Used for the wallpaper and theme utilities,
// where a failure is a warning to surface, never a reason to abort.
func Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%q failed: %w", name, err)
	}
	return nil
}
