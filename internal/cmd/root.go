package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/sitegrab/internal/config"
	"github.com/renato0307/sitegrab/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" settings:"debug"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" settings:"max_log_files"`

	Serve    ServeCmd    `cmd:"" help:"Run the capture API for the browser extension (default)" default:"1"`
	Replay   ReplayCmd   `cmd:"replay" help:"Run one capture session from a recorded request log"`
	Resolve  ResolveCmd  `cmd:"resolve" help:"Show where resource URLs would be stored in an archive"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.settings.MaxLogFiles != nil && unsetFlag(c.MaxLogFiles, logging.DefaultMaxLogFiles, logging.EnvMaxLogFiles) {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
		if c.settings.Debug != nil && *c.settings.Debug && unsetFlag(c.Debug, false, logging.EnvDebug) {
			c.Debug = true
		}
	}

	opts := logging.Options{Debug: c.Debug, File: c.DebugFile, MaxFiles: c.MaxLogFiles}
	// A debug environment inherited from a parent process is applied quietly
	inherited := os.Getenv(logging.EnvDebug) != ""
	opts.ApplyEnv()

	logFile, err := logging.Setup(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if logFile != "" && !inherited {
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFile)
	}

	return nil
}

// settingsOrEmpty never returns nil
func (c *CLI) settingsOrEmpty() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// unsetFlag reports whether a flag still holds its default and has no env override
func unsetFlag[T comparable](value, defaultValue T, envVar string) bool {
	if value != defaultValue {
		return false
	}
	_, hasEnv := os.LookupEnv(envVar)
	return !hasEnv
}
