package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/renato0307/sitegrab/internal/adapters/eventsource"
	"github.com/renato0307/sitegrab/internal/adapters/progress"
	"github.com/renato0307/sitegrab/internal/domain"
	"github.com/renato0307/sitegrab/internal/logging"
	"github.com/renato0307/sitegrab/paths"
)

// ReplayCmd runs one capture session from a JSON Lines request log
type ReplayCmd struct {
	File         string `arg:"" help:"Request log with one JSON event per line" type:"existingfile"`
	PageURL      string `help:"URL of the page the capture starts on" required:""`
	TabID        int    `help:"Tab the recorded requests belong to" default:"0"`
	OutputDir    string `help:"Directory the archive is written to (default: ~/Downloads)" env:"SITEGRAB_OUTPUT_DIR"`
	FetchTimeout time.Duration `help:"Timeout for each resource download" default:"30s"`
	Concurrency  int    `help:"Maximum number of downloads in flight" default:"8"`
	UserAgent    string `help:"User-Agent sent when downloading resources" default:"sitegrab/1.0"`
}

// Run executes the replay command
func (r *ReplayCmd) Run(cli *CLI) error {
	settings := cli.settingsOrEmpty()
	outputDir := r.OutputDir
	if outputDir == "" {
		outputDir = settings.OutputDir
	}
	if outputDir == "" {
		outputDir = paths.GetArchiveDir()
	}

	container, err := NewContainer(ContainerOptions{
		FetchTimeout:         r.FetchTimeout,
		MaxConcurrentFetches: r.Concurrency,
		Notifier:             progress.LogNotifier{},
		OutputDir:            outputDir,
		UserAgent:            r.UserAgent,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer container.Close()

	f, err := os.Open(r.File)
	if err != nil {
		return fmt.Errorf("failed to open request log: %w", err)
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session, err := container.CaptureService.Start(ctx, r.PageURL, r.TabID)
	if err != nil {
		return fmt.Errorf("failed to start capture: %w", err)
	}

	count, readErr := eventsource.ReadJSONLines(ctx, f, func(event domain.RequestEvent) {
		container.Hub.Publish(event)
	})
	logging.Logger.Info("Request log replayed", "file", r.File, "events", count, "session_id", session.ID)

	// Stop even when the log is broken so fetched resources are kept
	result, stopErr := container.CaptureService.Stop(context.WithoutCancel(ctx))
	printStopSummary(os.Stdout, count, result, stopErr)

	if stopErr != nil {
		return stopErr
	}
	if readErr != nil {
		return fmt.Errorf("request log %s: %w", r.File, readErr)
	}
	return nil
}
