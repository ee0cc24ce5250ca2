// Package cli provides the command-line interface for lumina-welcome.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/luminaos/lumina-welcome/internal/config"
	"github.com/luminaos/lumina-welcome/internal/gui"
	"github.com/luminaos/lumina-welcome/internal/lifecycle"
	"github.com/luminaos/lumina-welcome/internal/locale"
	"github.com/luminaos/lumina-welcome/internal/logging"
	"github.com/luminaos/lumina-welcome/internal/notify"
	"github.com/luminaos/lumina-welcome/internal/sysmode"
	"github.com/luminaos/lumina-welcome/internal/version"
)

var (
	// Global flags
	cfgFile  string
	windowed bool
	replay   bool
	verbose  bool
	debug    bool

	// Global logger
	logger *logging.Logger
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lumina-welcome",
		Short: "Lumina Welcome - first-run greeter for Lumina Linux",
		Long: `Lumina Welcome ` + version.Version + ` - Built: ` + version.BuildTime + `
Fullscreen first-run greeter for Lumina Linux.

On live installer media it hands off to the system installer; on an
installed system it runs the first-boot setup flow exactly once and then
never shows up again. Which external programs are launched is configured
in ~/.config/lumina-welcome/welcome.conf.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger("gui")
			if verbose || debug {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreeter()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")
	rootCmd.Flags().BoolVar(&windowed, "windowed", false, "Run in a window instead of fullscreen")
	rootCmd.Flags().BoolVar(&replay, "replay", false, "Show the greeter even if the first-run flow already completed")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	return rootCmd
}

// runGreeter is the whole startup sequence: resolve paths, load config,
// authorize, then hand over to the GUI.
func runGreeter() error {
	paths := config.Resolve()

	cfgPath := cfgFile
	if cfgPath == "" {
		cfgPath = paths.ConfigFilePath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfgPath).Msg("Invalid config file, using defaults")
		cfg = config.NewConfig()
	}
	if windowed {
		cfg.UI.Windowed = true
	}

	gate := lifecycle.NewGate(sysmode.DefaultDetector(), paths, cfg.Commands, logger)
	gate.SetReplay(replay)

	decision, marker := gate.AuthorizeStartup()
	if decision == lifecycle.ExitImmediately {
		return nil
	}

	lifecycle.HookCleanup(marker, logger)
	defer marker.Release()

	return gui.Launch(gui.Options{
		Config:    cfg,
		Gate:      gate,
		Marker:    marker,
		Mode:      gate.Mode(),
		Notifier:  notify.NewNotifier(cfg.Notifications.Enabled, logger),
		Logger:    logger,
		LocaleTag: locale.Current(logger),
	})
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
