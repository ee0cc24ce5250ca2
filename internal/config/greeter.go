package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Config is the greeter configuration, read from an INI file under the
// user's config directory. Which external binaries the greeter launches is
// deliberately configuration data, not code: OEM spins of Lumina swap the
// installer UI and the wallpaper tooling without patching the greeter.
//
// File location: ~/.config/lumina-welcome/welcome.conf
//
// INI format:
//
//	[commands]
//	installer = calamares
//	session_helper = lumina-first-run
//	wallpaper_setter = lumina-wallpaper
//	theme_generator = lumina-theme
//
//	[ui]
//	windowed = false
//	greeting_interval_seconds = 3
//	wallpapers_dir = /usr/share/backgrounds/lumina
//
//	[notifications]
//	enabled = true
type Config struct {
	Commands      CommandsConfig
	UI            UIConfig
	Notifications NotificationsConfig
}

// CommandsConfig names the external programs the greeter shells out to.
// Each value is a full command line; arguments after the binary name are
// split on whitespace. The wallpaper setter additionally receives the
// chosen image path as its final argument.
type CommandsConfig struct {
	// Installer is launched detached when running from live media.
	Installer string `ini:"installer"`

	// SessionHelper is launched detached on an installed system after
	// the completion marker has been written.
	SessionHelper string `ini:"session_helper"`

	// WallpaperSetter is run synchronously; a non-zero exit is a warning,
	// not a failure.
	WallpaperSetter string `ini:"wallpaper_setter"`

	// ThemeGenerator is run synchronously after the wallpaper changes.
	ThemeGenerator string `ini:"theme_generator"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Windowed disables fullscreen. Mainly for development.
	Windowed bool `ini:"windowed"`

	// GreetingIntervalSeconds is how long each greeting stays on screen.
	GreetingIntervalSeconds int `ini:"greeting_interval_seconds"`

	// WallpapersDir is scanned for the wallpaper picker.
	WallpapersDir string `ini:"wallpapers_dir"`
}

// NotificationsConfig contains desktop notification settings.
type NotificationsConfig struct {
	// Enabled indicates whether desktop notifications are shown.
	// Default: true
	Enabled bool `ini:"enabled"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Commands: CommandsConfig{
			Installer:       "calamares",
			SessionHelper:   "lumina-first-run",
			WallpaperSetter: "lumina-wallpaper",
			ThemeGenerator:  "lumina-theme",
		},
		UI: UIConfig{
			Windowed:                false,
			GreetingIntervalSeconds: 3,
			WallpapersDir:           "/usr/share/backgrounds/lumina",
		},
		Notifications: NotificationsConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from an INI file.
// If the file doesn't exist, returns a config with default values and no error.
// If the file exists but is invalid, returns an error.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load welcome.conf: %w", err)
	}

	commands := iniFile.Section("commands")
	cfg.Commands.Installer = commands.Key("installer").MustString(cfg.Commands.Installer)
	cfg.Commands.SessionHelper = commands.Key("session_helper").MustString(cfg.Commands.SessionHelper)
	cfg.Commands.WallpaperSetter = commands.Key("wallpaper_setter").MustString(cfg.Commands.WallpaperSetter)
	cfg.Commands.ThemeGenerator = commands.Key("theme_generator").MustString(cfg.Commands.ThemeGenerator)

	uiSection := iniFile.Section("ui")
	cfg.UI.Windowed = uiSection.Key("windowed").MustBool(false)
	cfg.UI.GreetingIntervalSeconds = uiSection.Key("greeting_interval_seconds").MustInt(3)
	cfg.UI.WallpapersDir = uiSection.Key("wallpapers_dir").MustString(cfg.UI.WallpapersDir)
	if cfg.UI.GreetingIntervalSeconds < 1 {
		cfg.UI.GreetingIntervalSeconds = 1
	}

	notifySection := iniFile.Section("notifications")
	cfg.Notifications.Enabled = notifySection.Key("enabled").MustBool(true)

	return cfg, nil
}

// Save writes configuration to an INI file.
// Creates parent directories if they don't exist.
func Save(cfg *Config, path string) error {
	if path == "" {
		return fmt.Errorf("no config path to save to")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	iniFile := ini.Empty()

	commands, err := iniFile.NewSection("commands")
	if err != nil {
		return fmt.Errorf("failed to create commands section: %w", err)
	}
	commands.NewKey("installer", cfg.Commands.Installer)
	commands.NewKey("session_helper", cfg.Commands.SessionHelper)
	commands.NewKey("wallpaper_setter", cfg.Commands.WallpaperSetter)
	commands.NewKey("theme_generator", cfg.Commands.ThemeGenerator)

	uiSection, err := iniFile.NewSection("ui")
	if err != nil {
		return fmt.Errorf("failed to create ui section: %w", err)
	}
	uiSection.NewKey("windowed", fmt.Sprintf("%t", cfg.UI.Windowed))
	uiSection.NewKey("greeting_interval_seconds", fmt.Sprintf("%d", cfg.UI.GreetingIntervalSeconds))
	uiSection.NewKey("wallpapers_dir", cfg.UI.WallpapersDir)

	notifySection, err := iniFile.NewSection("notifications")
	if err != nil {
		return fmt.Errorf("failed to create notifications section: %w", err)
	}
	notifySection.NewKey("enabled", fmt.Sprintf("%t", cfg.Notifications.Enabled))

	if err := iniFile.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write welcome.conf: %w", err)
	}
	return nil
}

// SplitCommand splits a configured command line into binary and arguments.
// Returns an empty name for a blank command.
func SplitCommand(command string) (name string, args []string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
