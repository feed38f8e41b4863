package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/sitegrab/paths"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Setup is called.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// DefaultMaxLogFiles is the rotation limit used when nothing else is configured
const DefaultMaxLogFiles = 1000

// Environment variables read by ApplyEnv
const (
	EnvDebug       = "SITEGRAB_DEBUG"
	EnvDebugFile   = "SITEGRAB_DEBUG_FILE"
	EnvMaxLogFiles = "SITEGRAB_MAX_LOG_FILES"
)

const logFilePrefix = "sitegrab-"

// Options controls where log records go
type Options struct {
	// Debug writes debug-level records to a fresh file under Dir
	Debug bool
	// File is a fixed log file; it implies Debug and disables rotation
	File string
	// Dir defaults to $SITEGRAB_HOME/logs
	Dir string
	// MaxFiles is the number of rotated files kept, 0 keeps all
	MaxFiles int
}

// ApplyEnv fills options not set on the command line from the environment,
// so capture processes spawned with the SITEGRAB_DEBUG variables keep logging
func (o *Options) ApplyEnv() {
	if os.Getenv(EnvDebug) == "1" {
		o.Debug = true
	}
	if file := os.Getenv(EnvDebugFile); file != "" && o.File == "" {
		o.File = file
	}
	if raw := os.Getenv(EnvMaxLogFiles); raw != "" && o.MaxFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(raw); err == nil {
			o.MaxFiles = parsed
		}
	}
}

// Setup replaces Logger according to opts. It returns the log file in use,
// or "" when records are discarded.
func Setup(opts Options) (string, error) {
	if !opts.Debug && opts.File == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	path, err := opts.logFilePath()
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).With("pid", os.Getpid())
	Logger.Info("Debug logging initialized", "log_file", path)

	return path, nil
}

// ForSession returns a logger that tags every record with the capture session id
func ForSession(sessionID string) *slog.Logger {
	return Logger.With("session_id", sessionID)
}

// logFilePath creates the log directory and, for rotated logs, prunes old files
func (o Options) logFilePath() (string, error) {
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return o.File, nil
	}

	dir := o.Dir
	if dir == "" {
		dir = filepath.Join(paths.GetSitegrabHome(), "logs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if o.MaxFiles > 0 {
		if err := pruneLogs(dir, o.MaxFiles-1); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	name := fmt.Sprintf("%s%s-%s.log", logFilePrefix, time.Now().Format("20060102-150405"), uuid.NewString()[:8])
	return filepath.Join(dir, name), nil
}

// pruneLogs deletes the oldest sitegrab log files in dir until at most keep remain.
// Names carry a timestamp, so lexical order is creation order.
func pruneLogs(dir string, keep int) error {
	logFiles, err := filepath.Glob(filepath.Join(dir, logFilePrefix+"*.log"))
	if err != nil {
		return fmt.Errorf("failed to list log files: %w", err)
	}
	if len(logFiles) <= keep {
		return nil
	}

	sort.Strings(logFiles)
	for _, path := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}
	return nil
}
