// Package config provides configuration and path management for Lumina Welcome.
package config

import (
	"os"
	"path/filepath"
)

// Marker file names. The completion marker lives in the user's config
// directory (persistent across sessions); the session marker lives in the
// runtime directory so a crashed session cannot block the next login forever.
const (
	completionMarkerName = "first-run-done"
	sessionMarkerName    = "lumina-welcome.lock"
)

// Paths holds every filesystem location the greeter reads or writes.
// Resolve computes it once at startup; tests build their own.
type Paths struct {
	// ConfigDir is the persistent per-user config directory,
	// ~/.config/lumina-welcome on a default setup.
	ConfigDir string

	// RuntimeDir is the session-scoped directory for the lock file,
	// $XDG_RUNTIME_DIR or the state directory as a fallback.
	RuntimeDir string

	// CompletionMarker marks that the one-time first-run flow already ran.
	CompletionMarker string

	// SessionMarker guards against a second instance in the same session.
	SessionMarker string

	// Degraded is set when no home directory could be determined.
	// All marker logic is skipped in that case (fail-open).
	Degraded bool
}

// Resolve computes the path set from the environment.
// A missing home directory yields a Degraded result, never an error:
// the greeter still runs, it just cannot persist anything.
func Resolve() Paths {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return Paths{Degraded: true}
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(home, ".config")
	}
	configDir = filepath.Join(configDir, "lumina-welcome")

	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		stateDir := os.Getenv("XDG_STATE_HOME")
		if stateDir == "" {
			stateDir = filepath.Join(home, ".local", "state")
		}
		runtimeDir = filepath.Join(stateDir, "lumina-welcome")
	}

	return Paths{
		ConfigDir:        configDir,
		RuntimeDir:       runtimeDir,
		CompletionMarker: filepath.Join(configDir, completionMarkerName),
		SessionMarker:    filepath.Join(runtimeDir, sessionMarkerName),
	}
}

// PathsIn builds a path set rooted at the given directories.
// Used by tests and by the --replay flow.
func PathsIn(configDir, runtimeDir string) Paths {
	return Paths{
		ConfigDir:        configDir,
		RuntimeDir:       runtimeDir,
		CompletionMarker: filepath.Join(configDir, completionMarkerName),
		SessionMarker:    filepath.Join(runtimeDir, sessionMarkerName),
	}
}

// ConfigFilePath returns the greeter config file location for this path set.
func (p Paths) ConfigFilePath() string {
	if p.Degraded {
		return ""
	}
	return filepath.Join(p.ConfigDir, "welcome.conf")
}
