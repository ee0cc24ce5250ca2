// Package sysmode classifies the host environment the greeter runs in:
// live installer medium, installed system, or unknown.
package sysmode

import "os"

// Mode is the detected class of host environment.
type Mode int

const (
	// ModeUnknown means neither marker was found. The greeter still runs
	// but launches nothing on exit.
	ModeUnknown Mode = iota

	// ModeLive means the system booted from the live installer medium.
	ModeLive

	// ModeInstalled means the greeter runs on a fully installed system.
	ModeInstalled
)

// String returns a human-readable mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeInstalled:
		return "installed"
	default:
		return "unknown"
	}
}

// Default probe locations. The release file is laid down by the installer's
// post-install hook; the medium directory only exists inside the live boot
// namespace.
const (
	DefaultInstalledMarker = "/etc/lumina-release-full"
	DefaultLiveMarker      = "/run/live/medium"
)

// Detector probes the filesystem to classify the environment.
// The zero value is unusable; use NewDetector or DefaultDetector.
type Detector struct {
	installedMarker string
	liveMarker      string
}

// NewDetector creates a detector with explicit probe paths. Tests point
// these at a temp directory.
func NewDetector(installedMarker, liveMarker string) Detector {
	return Detector{
		installedMarker: installedMarker,
		liveMarker:      liveMarker,
	}
}

// DefaultDetector creates a detector using the stock Lumina probe paths.
func DefaultDetector() Detector {
	return NewDetector(DefaultInstalledMarker, DefaultLiveMarker)
}

// Detect classifies the current environment. The installed-system probe is
// evaluated first and wins if both markers are somehow present. A missing
// path is a valid negative result, not an error, so Detect cannot fail.
// The result is never cached; the environment cannot change mid-run, and
// callers evaluate it once at startup anyway.
func (d Detector) Detect() Mode {
	if exists(d.installedMarker) {
		return ModeInstalled
	}
	if exists(d.liveMarker) {
		return ModeLive
	}
	return ModeUnknown
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
