package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renato0307/sitegrab/internal/config"
	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/internal/server"
	"github.com/renato0307/sitegrab/internal/services"
	"github.com/renato0307/sitegrab/internal/theme"
	"github.com/renato0307/sitegrab/paths"
)

// Serve flag defaults, also used to detect flags left unset
const (
	defaultAddr                 = server.DefaultAddr
	defaultAllowedOrigins       = "*"
	defaultFetchTimeout         = 30 * time.Second
	defaultMaxConcurrentFetches = services.DefaultMaxConcurrentFetches
	defaultUserAgent            = "sitegrab/1.0"
)

// ServeCmd runs the HTTP API the browser extension drives
type ServeCmd struct {
	Addr                 string        `help:"Listen address" default:"127.0.0.1:8765" env:"SITEGRAB_ADDR" settings:"addr"`
	AllowedOrigins       []string      `help:"Origins allowed to call the API ('*' for any)" default:"*" env:"SITEGRAB_ALLOWED_ORIGINS" settings:"allowed_origins"`
	DBPath               string        `help:"SQLite file for capture state (empty = in-memory)" env:"SITEGRAB_DB_PATH" settings:"db_path"`
	FetchTimeout         time.Duration `help:"Timeout for each resource download" default:"30s" env:"SITEGRAB_FETCH_TIMEOUT" settings:"fetch_timeout_seconds"`
	MaxArchiveBytes      int64         `help:"Maximum total size of archived resources (0 = unlimited)" default:"0" env:"SITEGRAB_MAX_ARCHIVE_BYTES" settings:"max_archive_bytes"`
	MaxConcurrentFetches int           `help:"Maximum number of downloads in flight" default:"8" env:"SITEGRAB_MAX_CONCURRENT_FETCHES" settings:"max_concurrent_fetches"`
	OutputDir            string        `help:"Directory finished archives are written to (default: ~/Downloads)" env:"SITEGRAB_OUTPUT_DIR" settings:"output_dir"`
	ShutdownTimeout      time.Duration `help:"Time allowed for open connections to close on exit" default:"30s"`
	UserAgent            string        `help:"User-Agent sent when downloading resources" default:"sitegrab/1.0" env:"SITEGRAB_USER_AGENT" settings:"user_agent"`
}

// applySettings fills flags left at their defaults from settings.json
func (s *ServeCmd) applySettings(settings *config.Settings) {
	if unsetFlag(s.Addr, defaultAddr, "SITEGRAB_ADDR") && settings.Addr != "" {
		s.Addr = settings.Addr
	}
	if len(s.AllowedOrigins) == 1 && s.AllowedOrigins[0] == defaultAllowedOrigins {
		if _, hasEnv := os.LookupEnv("SITEGRAB_ALLOWED_ORIGINS"); !hasEnv && len(settings.AllowedOrigins) > 0 {
			s.AllowedOrigins = settings.AllowedOrigins
		}
	}
	if unsetFlag(s.DBPath, "", "SITEGRAB_DB_PATH") && settings.DBPath != "" {
		s.DBPath = settings.DBPath
	}
	if unsetFlag(s.FetchTimeout, defaultFetchTimeout, "SITEGRAB_FETCH_TIMEOUT") && settings.FetchTimeoutSeconds != nil {
		s.FetchTimeout = time.Duration(*settings.FetchTimeoutSeconds) * time.Second
	}
	if unsetFlag(s.MaxArchiveBytes, 0, "SITEGRAB_MAX_ARCHIVE_BYTES") && settings.MaxArchiveBytes != nil {
		s.MaxArchiveBytes = *settings.MaxArchiveBytes
	}
	if unsetFlag(s.MaxConcurrentFetches, defaultMaxConcurrentFetches, "SITEGRAB_MAX_CONCURRENT_FETCHES") && settings.MaxConcurrentFetches != nil {
		s.MaxConcurrentFetches = *settings.MaxConcurrentFetches
	}
	if unsetFlag(s.OutputDir, "", "SITEGRAB_OUTPUT_DIR") && settings.OutputDir != "" {
		s.OutputDir = settings.OutputDir
	}
	if unsetFlag(s.UserAgent, defaultUserAgent, "SITEGRAB_USER_AGENT") && settings.UserAgent != "" {
		s.UserAgent = settings.UserAgent
	}

	if s.OutputDir == "" {
		s.OutputDir = paths.GetArchiveDir()
	}
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settingsOrEmpty())

	container, err := NewContainer(ContainerOptions{
		DBPath:               s.DBPath,
		FetchTimeout:         s.FetchTimeout,
		MaxArchiveBytes:      s.MaxArchiveBytes,
		MaxConcurrentFetches: s.MaxConcurrentFetches,
		OutputDir:            s.OutputDir,
		UserAgent:            s.UserAgent,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer container.Close()

	srv := server.New(server.Config{
		Addr:            s.Addr,
		AllowedOrigins:  s.AllowedOrigins,
		Debug:           cli.Debug,
		ShutdownTimeout: s.ShutdownTimeout,
	}, container.CaptureService, container.Hub, container.Broker, container.Registry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting sitegrab server",
		"addr", s.Addr,
		"output_dir", container.Saver.Dir(),
		"max_concurrent_fetches", s.MaxConcurrentFetches)

	fmt.Println(theme.TitleStyle.Render("sitegrab"))
	fmt.Println(theme.Row("Listening", "http://"+s.Addr))
	fmt.Println(theme.Row("Archives", container.Saver.Dir()))
	fmt.Println(theme.MutedStyle.Render("Press Ctrl+C to stop"))

	serveErr := srv.Run(ctx)

	// A live capture is saved rather than dropped
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	if err := container.CaptureService.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error("Failed to save live capture on shutdown", "error", err)
		if serveErr == nil {
			serveErr = fmt.Errorf("failed to save live capture: %w", err)
		}
	}

	return serveErr
}
