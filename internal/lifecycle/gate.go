package lifecycle

import (
	"errors"
	"fmt"
	"os"

	"github.com/luminaos/lumina-welcome/internal/config"
	"github.com/luminaos/lumina-welcome/internal/launcher"
	"github.com/luminaos/lumina-welcome/internal/logging"
	"github.com/luminaos/lumina-welcome/internal/sysmode"
)

// Decision is the startup verdict.
type Decision int

const (
	// Proceed means the greeter may show its UI.
	Proceed Decision = iota

	// ExitImmediately means another instance is live or the one-time flow
	// already ran; the process should terminate without showing anything.
	ExitImmediately
)

// ErrLaunchFailed wraps spawn errors from PerformExit. The caller keeps the
// UI (and the session marker) alive and lets the user retry.
var ErrLaunchFailed = errors.New("failed to launch external command")

// ExitAction describes what happens when the user finishes the flow.
// The zero value means "nothing to launch": the caller just terminates.
type ExitAction struct {
	// Command is the binary to start, empty when there is nothing to run.
	Command string

	// Args are the command arguments.
	Args []string

	// WriteCompletionMarker requests the persistent first-run marker to be
	// written before the spawn attempt.
	WriteCompletionMarker bool
}

// Gate implements the startup authorization and exit-action logic.
type Gate struct {
	detector sysmode.Detector
	paths    config.Paths
	commands config.CommandsConfig
	logger   *logging.Logger

	// replay ignores the completion marker so a finished first-run flow
	// can be replayed for testing. Set from the --replay flag.
	replay bool

	// mode is the environment classification from AuthorizeStartup.
	mode sysmode.Mode

	// detach is the spawn function, swappable in tests.
	detach func(name string, args ...string) error
}

// NewGate creates a lifecycle gate.
func NewGate(detector sysmode.Detector, paths config.Paths, commands config.CommandsConfig, logger *logging.Logger) *Gate {
	return &Gate{
		detector: detector,
		paths:    paths,
		commands: commands,
		logger:   logger,
		detach:   launcher.Detach,
	}
}

// SetReplay makes AuthorizeStartup ignore an existing completion marker.
func (g *Gate) SetReplay(replay bool) {
	g.replay = replay
}

// Mode returns the environment classification computed by AuthorizeStartup.
func (g *Gate) Mode() sysmode.Mode {
	return g.mode
}

// AuthorizeStartup decides whether this process may keep running.
//
// The returned SessionMarker is non-nil only on Proceed with a successfully
// acquired lock; the caller owns it and must arrange for Release on every
// exit path (see HookCleanup). Marker acquisition is best effort: an I/O
// error other than "already exists" logs a warning and still proceeds,
// because the lock guards convenience, not safety.
func (g *Gate) AuthorizeStartup() (Decision, *SessionMarker) {
	mode := g.detector.Detect()
	g.mode = mode
	g.logger.Info().Str("mode", mode.String()).Msg("Detected system mode")

	if g.paths.Degraded {
		g.logger.Warn().Msg("No home directory available; marker checks skipped")
		return Proceed, nil
	}

	if mode == sysmode.ModeInstalled && !g.replay {
		if _, err := os.Stat(g.paths.CompletionMarker); err == nil {
			g.logger.Info().Str("path", g.paths.CompletionMarker).Msg("First-run flow already completed; exiting")
			return ExitImmediately, nil
		}
	}

	marker, err := acquireSessionMarker(g.paths.SessionMarker, g.logger)
	if err != nil {
		if errors.Is(err, ErrAlreadyRunning) {
			g.logger.Info().Err(err).Msg("Session marker held; exiting")
			return ExitImmediately, nil
		}
		g.logger.Warn().Err(err).Str("path", g.paths.SessionMarker).Msg("Could not acquire session marker; continuing without it")
		return Proceed, nil
	}

	return Proceed, marker
}

// ResolveExitAction maps the detected mode to the external command the
// greeter hands off to when the user finishes the flow.
func (g *Gate) ResolveExitAction(mode sysmode.Mode) ExitAction {
	switch mode {
	case sysmode.ModeLive:
		name, args := config.SplitCommand(g.commands.Installer)
		return ExitAction{Command: name, Args: args}
	case sysmode.ModeInstalled:
		name, args := config.SplitCommand(g.commands.SessionHelper)
		return ExitAction{Command: name, Args: args, WriteCompletionMarker: true}
	default:
		return ExitAction{}
	}
}

// PerformExit executes an exit action: writes the completion marker when
// requested, then starts the external command detached.
//
// The completion marker is written exactly once per call, before the spawn,
// and its outcome never depends on the spawn outcome: a marker write
// failure is only logged, while a spawn failure returns an error wrapping
// ErrLaunchFailed. On that error the caller must NOT release the session
// marker or exit; the UI stays up so the user can retry.
func (g *Gate) PerformExit(action ExitAction) error {
	if action.WriteCompletionMarker {
		if g.paths.Degraded {
			g.logger.Warn().Msg("No home directory available; completion marker not written")
		} else if err := writeCompletionMarker(g.paths.CompletionMarker); err != nil {
			g.logger.Warn().Err(err).Str("path", g.paths.CompletionMarker).Msg("Could not write completion marker; greeter may run again next boot")
		} else {
			g.logger.Info().Str("path", g.paths.CompletionMarker).Msg("Completion marker written")
		}
	}

	if action.Command == "" {
		g.logger.Info().Msg("No exit command for this mode")
		return nil
	}

	g.logger.Info().Str("command", action.Command).Strs("args", action.Args).Msg("Launching exit command")
	if err := g.detach(action.Command, action.Args...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLaunchFailed, action.Command, err)
	}
	return nil
}
